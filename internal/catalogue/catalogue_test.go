package catalogue

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	assert.Equal(t, 200, c.Size())
	assert.Equal(t, domain.Categories, c.Categories())
	for _, cat := range domain.Categories {
		assert.Len(t, c.ByCategory(cat), 20, "category %s", cat)
	}
}

func TestDefault_TemplatesTaggedAndOrdered(t *testing.T) {
	all := Default().Templates()
	require.NotEmpty(t, all)
	assert.Equal(t, "学习一个新的投资知识", all[0].Title)
	assert.Equal(t, domain.CategoryLearning, all[0].Category)
	assert.Equal(t, domain.CategoryExecution, all[len(all)-1].Category)

	for _, tpl := range all {
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Emoji)
		assert.True(t, tpl.Category.Valid())
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	c := Default()
	a := c.Templates()
	a[0].Title = "mutated"
	assert.NotEqual(t, "mutated", c.Templates()[0].Title)
}

func TestLookup(t *testing.T) {
	tpl, ok := Default().Lookup("阅读一篇行业报告")
	require.True(t, ok)
	assert.Equal(t, []domain.Trait{domain.TraitN, domain.TraitT}, tpl.PersonalityPreference)

	_, ok = Default().Lookup("does not exist")
	assert.False(t, ok)
}

func TestLoadYAML_Valid(t *testing.T) {
	src := `
- category: sales
  templates:
    - title: 打一个销售电话
      description: 主动出击，收入才会增长。
      emoji: "📞"
      mbti_preference: [E, T]
      role_preference: [创业者/自雇者]
- category: mindset
  templates:
    - title: 写下三个感恩
      description: 富足心态从感恩开始。
      emoji: "🙏"
`
	c, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, []domain.Category{domain.CategorySales, domain.CategoryMindset}, c.Categories())

	first := c.Templates()[0]
	assert.Equal(t, domain.CategorySales, first.Category)
	assert.True(t, first.PrefersRole(domain.RoleEntrepreneur))
	assert.True(t, first.PrefersTrait(domain.TraitE))
}

func TestLoadYAML_Empty(t *testing.T) {
	_, err := LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCatalogue)

	_, err = LoadYAML(strings.NewReader("- category: sales\n  templates: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}

func TestLoadYAML_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown category": "- category: cooking\n  templates:\n    - {title: a, description: b, emoji: c}\n",
		"unknown trait":    "- category: sales\n  templates:\n    - {title: a, description: b, emoji: c, mbti_preference: [X]}\n",
		"unknown role":     "- category: sales\n  templates:\n    - {title: a, description: b, emoji: c, role_preference: [pilot]}\n",
		"missing title":    "- category: sales\n  templates:\n    - {description: b, emoji: c}\n",
		"duplicate title":  "- category: sales\n  templates:\n    - {title: a, description: b, emoji: c}\n    - {title: a, description: d, emoji: e}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestWriteYAML_RoundTripsDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf))

	c, err := LoadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Templates(), c.Templates())
}

func TestPersonaData(t *testing.T) {
	for _, p := range domain.PersonalityTypes {
		info, ok := Personality(p)
		assert.True(t, ok, "missing personality %s", p)
		assert.NotEmpty(t, info.Name)
	}
	for _, r := range domain.Roles {
		info, ok := RoleDetails(r)
		assert.True(t, ok, "missing role %s", r)
		assert.NotEmpty(t, info.Description)
	}
	info, _ := Personality(domain.INTJ)
	assert.Equal(t, "建筑师", info.Name)
}
