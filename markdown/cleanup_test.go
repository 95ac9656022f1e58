package markdown_test

import (
	"testing"

	"github.com/fwojciec/medium2dev"
	"github.com/fwojciec/medium2dev/markdown"
	"github.com/stretchr/testify/assert"
)

// Ensure Cleaner implements medium2dev.Cleaner at compile time.
var _ medium2dev.Cleaner = (*markdown.Cleaner)(nil)

func TestCollapseEmptyFences(t *testing.T) {
	t.Parallel()

	t.Run("removes empty fence", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "before\nafter", markdown.CollapseEmptyFences("before\n```\n```after"))
	})

	t.Run("removes whitespace-only fence", func(t *testing.T) {
		t.Parallel()
		got := markdown.CollapseEmptyFences("```\n   \n```")
		assert.NotContains(t, got, "```")
	})

	t.Run("keeps fences with content", func(t *testing.T) {
		t.Parallel()
		in := "```\nfmt.Println(1)\n```"
		assert.Equal(t, in, markdown.CollapseEmptyFences(in))
	})
}

func TestNormalizeLocalImageRefs(t *testing.T) {
	t.Parallel()

	pass := markdown.NormalizeLocalImageRefs("images/")

	t.Run("normalizes local image alt text", func(t *testing.T) {
		t.Parallel()
		got := pass("![A very long caption](images/image_1.png)")
		assert.Equal(t, "![Image](images/image_1.png)", got)
	})

	t.Run("leaves remote references untouched", func(t *testing.T) {
		t.Parallel()
		in := "![caption](https://miro.medium.com/photo.png)"
		assert.Equal(t, in, pass(in))
	})
}

func TestNewlineBeforeHeadings(t *testing.T) {
	t.Parallel()

	t.Run("inserts newline before mid-line heading", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "text\n## Heading", markdown.NewlineBeforeHeadings("text## Heading"))
	})

	t.Run("leaves line-start headings alone", func(t *testing.T) {
		t.Parallel()
		in := "intro\n\n## Heading\n\ntext"
		assert.Equal(t, in, markdown.NewlineBeforeHeadings(in))
	})

	t.Run("does not split multi-hash markers", func(t *testing.T) {
		t.Parallel()
		in := "### Deep Heading\n"
		assert.Equal(t, in, markdown.NewlineBeforeHeadings(in))
	})
}

func TestRemovePlatformFooterLinks(t *testing.T) {
	t.Parallel()

	got := markdown.RemovePlatformFooterLinks("body\n[More from us](https://medium.com/pub)\nrest")
	assert.NotContains(t, got, "More from us")
	assert.Contains(t, got, "body")
	assert.Contains(t, got, "rest")
}

func TestStripInteractionFragments(t *testing.T) {
	t.Parallel()

	t.Run("removes clap counts", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "text  more", markdown.StripInteractionFragments("text 120 claps more"))
	})

	t.Run("removes follow min read", func(t *testing.T) {
		t.Parallel()
		got := markdown.StripInteractionFragments("Follow 5 min read\ncontent")
		assert.NotContains(t, got, "min read")
		assert.Contains(t, got, "content")
	})
}

func TestStripLeadingBoilerplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full sequence",
			in:   "--\n12\nListen\nShare\ncontent",
			want: "content",
		},
		{
			name: "separator and number only",
			in:   "--\n12\ncontent",
			want: "content",
		},
		{
			name: "lone middle dot",
			in:   "·\ncontent",
			want: "content",
		},
		{
			name: "escaped separator",
			in:   "\\--\ncontent",
			want: "content",
		},
		{
			name: "mid-document sequences untouched",
			in:   "content\n--\n12\n",
			want: "content\n--\n12\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markdown.StripLeadingBoilerplate(tt.in))
		})
	}
}

func TestReformatCodeLinks(t *testing.T) {
	t.Parallel()

	got := markdown.ReformatCodeLinks("See `[fmt.Println](https://pkg.go.dev/fmt)` for details.")
	assert.Equal(t, "See [`fmt.Println`](https://pkg.go.dev/fmt) for details.", got)
}

func TestRemoveFooterSections(t *testing.T) {
	t.Parallel()

	pass := markdown.RemoveFooterSections([]string{"# In Plain English", "_Thank you for being a part of the_"})

	t.Run("cuts at community heading", func(t *testing.T) {
		t.Parallel()
		got := pass("article body\n\n# In Plain English\n\njoin us\nlinks\n")
		assert.Equal(t, "article body\n\n", got)
	})

	t.Run("cuts at thank-you phrase", func(t *testing.T) {
		t.Parallel()
		got := pass("body\n\n_Thank you for being a part of the_ community\nmore\n")
		assert.Equal(t, "body\n\n", got)
	})
}

func TestStripLeadingAuthorLinks(t *testing.T) {
	t.Parallel()

	pass := markdown.StripLeadingAuthorLinks([]string{"Vivek V"})

	t.Run("strips empty-text author link", func(t *testing.T) {
		t.Parallel()
		got := pass("[](https://user.medium.com/profile)\ncontent")
		assert.Equal(t, "content", got)
	})

	t.Run("strips named author link", func(t *testing.T) {
		t.Parallel()
		got := pass("[Vivek V](https://user.medium.com/profile)\ncontent")
		assert.Equal(t, "content", got)
	})

	t.Run("strips stacked pair", func(t *testing.T) {
		t.Parallel()
		got := pass("[](https://user.medium.com/p)\n[Vivek V](https://user.medium.com/p)\ncontent")
		assert.Equal(t, "content", got)
	})
}

func TestCollapseBlankLines(t *testing.T) {
	t.Parallel()

	t.Run("collapses three newlines", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", markdown.CollapseBlankLines("a\n\n\nb"))
	})

	t.Run("collapses many newlines", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", markdown.CollapseBlankLines("a\n\n\n\n\n\nb"))
	})
}

func TestDropLeadingSeparatorLines(t *testing.T) {
	t.Parallel()

	got := markdown.DropLeadingSeparatorLines("--\n·\n\\--\nreal content\n--\n")
	assert.Equal(t, "real content\n--\n", got)
}

func TestRemoveSeparatorLines(t *testing.T) {
	t.Parallel()

	got := markdown.RemoveSeparatorLines("a\n--\nb\n\\--\nc")
	assert.NotContains(t, got, "--")
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "c")
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("typical rendered document", func(t *testing.T) {
		t.Parallel()

		in := "--\n12\nListen\nShare\n" +
			"![long caption](images/image_1.png)\n\n" +
			"Intro paragraph.\n\n\n\n" +
			"## Section\n\n" +
			"See `[code](https://example.com/doc)` here.\n\n" +
			"# In Plain English\n\ncommunity footer\n"

		cleaner := markdown.NewCleaner()
		got := cleaner.Clean(in)

		assert.NotContains(t, got, "Listen")
		assert.NotContains(t, got, "Share")
		assert.Contains(t, got, "![Image](images/image_1.png)")
		assert.Contains(t, got, "Intro paragraph.")
		assert.Contains(t, got, "[`code`](https://example.com/doc)")
		assert.NotContains(t, got, "In Plain English")
		assert.NotContains(t, got, "\n\n\n")
	})

	t.Run("cleaning is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"--\n12\nListen\nShare\ncontent here\n\n\n\nmore\n--\nend\n",
			"·\n[](https://user.medium.com/p)\nBody text.\n\n# In Plain English\nfooter\n",
			"plain already-clean document\n\nwith two paragraphs\n",
			"![x](images/image_1.jpg)\n\ntext## Heading\n\n120 claps\n",
		}

		cleaner := markdown.NewCleaner()
		for _, in := range inputs {
			once := cleaner.Clean(in)
			twice := cleaner.Clean(once)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("collapses four or more newlines anywhere", func(t *testing.T) {
		t.Parallel()

		cleaner := markdown.NewCleaner()
		got := cleaner.Clean("start\n\n\n\n\nmiddle\n\n\n\nend")

		assert.NotContains(t, got, "\n\n\n")
		assert.Contains(t, got, "start\n\nmiddle\n\nend")
	})

	t.Run("custom image prefix", func(t *testing.T) {
		t.Parallel()

		cleaner := markdown.NewCleaner(markdown.WithImagePrefix("assets/"))
		got := cleaner.Clean("![alt](assets/image_1.png) ![alt](images/image_2.png)")

		assert.Contains(t, got, "![Image](assets/image_1.png)")
		assert.Contains(t, got, "![alt](images/image_2.png)")
	})

	t.Run("custom footer markers", func(t *testing.T) {
		t.Parallel()

		cleaner := markdown.NewCleaner(markdown.WithFooterMarkers("# Join Our Newsletter"))
		got := cleaner.Clean("body\n\n# Join Our Newsletter\nsubscribe\n")

		assert.Equal(t, "body\n\n", got)
	})
}
