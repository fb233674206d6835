package contact_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/contacts/internal/contact"
)

var (
	zebra = contact.Contact{Company: "Zebra Ltd", Person: "Zed", Phone: "0812345678", Email: "z@zebra.com"}
	alpha = contact.Contact{Company: `Alpha "Inc"`, Person: `Alice "A."`, Phone: "090-000-0000", Email: "Alice@Alpha.com"}
	llc   = contact.Contact{Company: "Company, LLC", Person: "John Jr.", Phone: "(081) 234-5678", Email: "john@company.com"}
)

func TestClassify(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want contact.KeywordKind
	}{
		{in: "(081) 234-5678", want: contact.KindPhone},
		{in: "812345", want: contact.KindPhone},
		{in: "ann@mail", want: contact.KindEmail},
		{in: "user1@x.com", want: contact.KindEmail},
		{in: "Alpha", want: contact.KindText},
		{in: `alpha "inc"`, want: contact.KindText},
		{in: "", want: contact.KindText},
	} {
		assert.Equal(t, tt.want, contact.Classify(tt.in), "Classify(%q)", tt.in)
	}
}

func TestParseSearchMode(t *testing.T) {
	t.Parallel()

	mode, err := contact.ParseSearchMode("")
	require.NoError(t, err)
	assert.Equal(t, contact.SearchPrefix, mode)

	mode, err = contact.ParseSearchMode("substring")
	require.NoError(t, err)
	assert.Equal(t, contact.SearchSubstring, mode)

	_, err = contact.ParseSearchMode("fuzzy")
	require.ErrorIs(t, err, contact.ErrSearchMode)
}

func TestQuerySearch(t *testing.T) {
	t.Parallel()

	all := []contact.Contact{zebra, alpha, llc}

	for _, tt := range []struct {
		keyword string
		mode    contact.SearchMode
		want    []string
	}{
		{keyword: "ze", mode: contact.SearchPrefix, want: []string{"Zebra Ltd"}},
		{keyword: "ZED", mode: contact.SearchPrefix, want: []string{"Zebra Ltd"}},
		{keyword: "812345", mode: contact.SearchPrefix, want: []string{"Zebra Ltd", "Company, LLC"}},
		{keyword: "0900", mode: contact.SearchPrefix, want: []string{`Alpha "Inc"`}},
		{keyword: "081-234", want: []string{"Zebra Ltd", "Company, LLC"}},
		{keyword: "alice@", want: []string{`Alpha "Inc"`}},
		{keyword: "z@zeb", want: []string{"Zebra Ltd"}},
		{keyword: "ebra", mode: contact.SearchPrefix, want: nil},
		{keyword: "ebra", mode: contact.SearchSubstring, want: []string{"Zebra Ltd"}},
		{keyword: "llc", mode: contact.SearchSubstring, want: []string{"Company, LLC"}},
		{keyword: "alpha", mode: contact.SearchPrefix, want: []string{`Alpha "Inc"`}},
	} {
		q := contact.NewQuery(tt.keyword)

		var got []string

		for _, c := range all {
			if q.Search(c, tt.mode) {
				got = append(got, c.Company)
			}
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("search %q (%s) mismatch (-want +got):\n%s", tt.keyword, tt.mode, diff)
		}
	}
}

func TestQueryList(t *testing.T) {
	t.Parallel()

	assert.True(t, contact.NewQuery("").List(zebra))
	assert.True(t, contact.NewQuery("  ").List(zebra))
	assert.True(t, contact.NewQuery("alp").List(alpha))
	assert.False(t, contact.NewQuery("alp").List(zebra))
	assert.True(t, contact.NewQuery("co").List(llc), "list filter matches anywhere in the name")
}

func TestQueryDelete(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		keyword string
		c       contact.Contact
		want    bool
	}{
		{keyword: "(081) 234-5678", c: llc, want: true},
		{keyword: "0812345678", c: llc, want: true},
		{keyword: "081-234", c: llc, want: false},
		{keyword: `alpha "inc"`, c: alpha, want: true},
		{keyword: "ALPHA INC", c: alpha, want: true},
		{keyword: "alpha", c: alpha, want: false},
		{keyword: "alice a", c: alpha, want: true},
		{keyword: "alice@alpha.com", c: alpha, want: true},
		{keyword: "alice@alpha", c: alpha, want: false},
		{keyword: "company llc", c: llc, want: true},
		{keyword: "!!!", c: contact.Contact{Company: "???", Person: "x"}, want: false},
	} {
		got := contact.NewQuery(tt.keyword).Delete(tt.c)
		assert.Equal(t, tt.want, got, "delete %q against %q", tt.keyword, tt.c.Company)
	}
}

func TestQueryUpdate(t *testing.T) {
	t.Parallel()

	assert.True(t, contact.NewQuery(`Alpha "Inc"`).Update(alpha))
	assert.True(t, contact.NewQuery("alpha inc").Update(alpha))
	assert.False(t, contact.NewQuery("Alice A").Update(alpha), "updates match the company only")
	assert.False(t, contact.NewQuery("").Update(contact.Contact{}))
}

func TestContactWithLeavesOriginal(t *testing.T) {
	t.Parallel()

	updated := alpha.With(contact.FieldPhone, "+66 90 000 0000")

	assert.Equal(t, "090-000-0000", alpha.Phone)
	assert.Equal(t, "+66 90 000 0000", updated.Phone)
	assert.Equal(t, alpha.Company, updated.Company)

	for _, f := range contact.Fields {
		assert.Equal(t, alpha.Fields()[f-1], alpha.Get(f))
	}

	assert.Equal(t, alpha, contact.FromFields(alpha.Fields()))
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := contact.ParseField("3")
	require.NoError(t, err)
	assert.Equal(t, contact.FieldPhone, f)
	assert.Equal(t, "Phone", f.String())

	for _, bad := range []string{"0", "5", "x", ""} {
		_, err := contact.ParseField(bad)
		require.ErrorIs(t, err, contact.ErrUnknownField, "ParseField(%q)", bad)
	}
}

func TestListable(t *testing.T) {
	t.Parallel()

	assert.True(t, zebra.Listable())
	assert.False(t, contact.Contact{Company: "X", Phone: "1", Email: "a@b.c"}.Listable())
	assert.True(t, contact.Contact{Company: "X", Person: "Y"}.Listable())
}
