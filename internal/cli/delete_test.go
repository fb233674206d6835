package cli_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/contacts/internal/cli"
	"github.com/calvinalkan/contacts/internal/fs"
)

const dupRows = "DupCo,One,081,x@dup.co\n" +
	"DupCo,Two,081,x@dup.co\n" +
	"DupCo,Three,081,x@dup.co\n"

func Test_Delete_By_Phone_Then_Company_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(llcLine + "\n" + alphaLine + "\n")

	stdout := c.MustRunWithInput("(081) 234-5678\ny\n", "delete")
	cli.AssertContains(t, stdout, "Contact deleted.")
	assert.Equal(t, alphaLine+"\n", c.ReadContacts())

	c.MustRunWithInput("alpha \"inc\"\ny\n", "delete")
	assert.Equal(t, "0", c.MustRun("count"))
}

func Test_Delete_By_Email_And_Person_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	c.MustRun("delete", "ANN@mail.com", "-y")
	c.MustRun("delete", "ben", "-y")

	assert.Equal(t, "Zebra Ltd,Zed,0812345678,z@zebra.com\n", c.ReadContacts())
}

func Test_Delete_Requires_Exact_Match_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	for _, keyword := range []string{"081-222", "ann@mail", "multi"} {
		stderr := c.MustFail("delete", keyword, "-y")
		cli.AssertContains(t, stderr, "no matching contact")
	}

	assert.Equal(t, multiRows, c.ReadContacts())
}

func Test_Delete_Missing_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("delete", "anything", "-y")

	cli.AssertContains(t, stderr, "contacts file does not exist")
	assert.NoFileExists(t, c.ContactsFile())
}

func Test_Delete_Picks_Among_Duplicates_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(dupRows)

	stdout, stderr, code := c.RunWithInput("DupCo\n5\nx\n2\ny\n", "delete")
	require.Equal(t, 0, code, stderr)

	cli.AssertContains(t, stdout, "Found 3 matching contacts:")
	cli.AssertContains(t, stdout, "  2. DupCo | Two | 081 | x@dup.co")
	cli.AssertContains(t, stderr, "enter a number between 1 and 3")
	assert.Equal(t, "DupCo,One,081,x@dup.co\nDupCo,Three,081,x@dup.co\n", c.ReadContacts())
}

func Test_Delete_Index_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(dupRows)

	c.MustRun("delete", "dupco", "--index", "3", "-y")
	assert.Equal(t, "DupCo,One,081,x@dup.co\nDupCo,Two,081,x@dup.co\n", c.ReadContacts())

	stderr := c.MustFail("delete", "dupco", "-i", "3", "-y")
	cli.AssertContains(t, stderr, "index out of range")
}

func Test_Delete_Cancel_Paths_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input string
	}{
		{name: "zero keyword", input: "0\n"},
		{name: "zero selection", input: "DupCo\n0\n"},
		{name: "declined", input: "DupCo\n1\nn\n"},
		{name: "end of input", input: "DupCo\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.WriteContacts(dupRows)

			stdout := c.MustRunWithInput(tt.input, "delete")

			cli.AssertContains(t, stdout, "Canceled.")
			assert.Equal(t, dupRows, c.ReadContacts())
		})
	}
}

func Test_Delete_Replace_Failure_Keeps_Temp_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(dupRows)

	faulty := fs.NewFaulty(fs.NewReal())
	faulty.Fail(fs.OpReplace, syscall.EIO)
	c.FS = faulty

	stderr := c.MustFail("delete", "dupco", "-i", "1", "-y")

	cli.AssertContains(t, stderr, "cannot replace contacts file")
	cli.AssertContains(t, stderr, "rewritten data kept in")
	assert.Equal(t, dupRows, c.ReadContacts())

	temps, err := filepath.Glob(filepath.Join(c.Dir, ".contacts.csv.tmp-*"))
	require.NoError(t, err)
	require.Len(t, temps, 1)

	data, err := os.ReadFile(temps[0])
	require.NoError(t, err)
	assert.Equal(t, "DupCo,Two,081,x@dup.co\nDupCo,Three,081,x@dup.co\n", string(data))
}

func Test_Delete_Open_Failure_Writes_Nothing_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(dupRows)

	faulty := fs.NewFaulty(fs.NewReal())
	faulty.Fail(fs.OpCreateTemp, syscall.EROFS)
	c.FS = faulty

	stderr := c.MustFail("delete", "dupco", "-i", "1", "-y")

	cli.AssertContains(t, stderr, "cannot create temporary file")
	assert.Equal(t, dupRows, c.ReadContacts())
}
