package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/contacts/internal/cli"
)

const multiRows = "Multi A Co,Ann,081-111-1111,ann@mail.com\n" +
	"Multi B Co,Ben,081-222-2222,ben@mail.com\n" +
	"Zebra Ltd,Zed,0812345678,z@zebra.com\n"

func Test_Ls_Missing_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	assert.Equal(t, "No contacts found.", c.MustRun("ls"))
}

func Test_Ls_All_And_Filtered_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	stdout, stderr, code := c.Run("ls")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "  1. Multi A Co | Ann | 081-111-1111 | ann@mail.com\n"), "rows keep their index padding: %q", stdout)
	cli.AssertContains(t, stdout, "  3. Zebra Ltd | Zed | 0812345678 | z@zebra.com")
	cli.AssertContains(t, stdout, "Total: 3")

	stdout = c.MustRun("ls", "co")
	cli.AssertContains(t, stdout, "1. Multi A Co | Ann")
	cli.AssertContains(t, stdout, "Multi B Co")
	cli.AssertNotContains(t, stdout, "Zebra")
	cli.AssertContains(t, stdout, "Total: 2")

	assert.Equal(t, "No contacts found.", c.MustRun("ls", "nobody"))
}

func Test_Ls_Notes_Incomplete_Rows_Without_Failing_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts("Lonely,,1,a@b.c\n" + multiRows + ",Nobody,2,n@b.c\n")

	stdout, stderr, code := c.Run("ls")

	assert.Equal(t, 0, code)
	cli.AssertContains(t, stdout, "Total: 3")
	cli.AssertNotContains(t, stdout, "Lonely")
	cli.AssertNotContains(t, stdout, "Nobody")
	assert.Equal(t, "note: 2 row(s) without company or contact person not shown\n", stderr)

	stdout, stderr, code = c.Run("ls", "lonely")
	assert.Equal(t, 0, code)
	assert.Equal(t, "No contacts found.\n", stdout)
	cli.AssertContains(t, stderr, "note: 1 row(s)")
}

func Test_Search_By_Kind_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	for _, tt := range []struct {
		keyword string
		want    []string
	}{
		{keyword: "ann@mail", want: []string{"Multi A Co"}},
		{keyword: "081-222", want: []string{"Multi B Co"}},
		{keyword: "812345", want: []string{"Zebra Ltd"}},
		{keyword: "Ben", want: []string{"Multi B Co"}},
		{keyword: "multi", want: []string{"Multi A Co", "Multi B Co"}},
		{keyword: "ebra", want: nil},
	} {
		stdout := c.MustRun("search", tt.keyword)

		if len(tt.want) == 0 {
			assert.Equal(t, "No contacts found.", stdout, "search %q", tt.keyword)

			continue
		}

		var got []string

		for _, line := range strings.Split(stdout, "\n") {
			if company, _, ok := strings.Cut(line, " | "); ok {
				_, name, _ := strings.Cut(company, ". ")
				got = append(got, name)
			}
		}

		assert.Equal(t, tt.want, got, "search %q", tt.keyword)
	}
}

func Test_Search_Substring_Mode_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".contacts.json", `{"search_mode": "substring"}`)
	c.WriteContacts(multiRows)

	stdout := c.MustRun("search", "ebra")
	cli.AssertContains(t, stdout, "Zebra Ltd")
	cli.AssertContains(t, stdout, "Found 1 contact(s).")
}

func Test_Search_Prompts_For_Keyword_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	stdout, stderr, code := c.RunWithInput("\n  \nzebra\n", "search")
	require.Equal(t, 0, code)
	cli.AssertContains(t, stderr, "keyword cannot be empty")
	cli.AssertContains(t, stdout, "Zebra Ltd")

	stdout = c.MustRunWithInput("0\n", "search")
	cli.AssertContains(t, stdout, "Canceled.")
}
