package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/contacts/internal/cli"
)

func Test_Update_Phone_Interactive_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(llcLine + "\n" + alphaLine + "\n")

	stdout := c.MustRunWithInput("Alpha \"Inc\"\n3\n+66 90 000 0000\ny\n", "update")

	cli.AssertContains(t, stdout, "Current contact:")
	cli.AssertContains(t, stdout, "  3. Phone")
	cli.AssertContains(t, stdout, "Contact updated.")
	assert.Equal(t, llcLine+"\n"+`"Alpha ""Inc""","Alice ""A.""",+66 90 000 0000,Alice@Alpha.com`+"\n", c.ReadContacts())
}

func Test_Update_With_Flags_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(multiRows)

	c.MustRun("update", "multi a co", "--field", "company", "--value", "Renamed Co A", "-y")
	c.MustRun("update", "multi b co", "-F", "2", "--value", "Benedict", "-y")
	c.MustRun("update", "renamed co a", "-F", "email", "--value", "ann@renamed.com", "-y")

	want := "Renamed Co A,Ann,081-111-1111,ann@renamed.com\n" +
		"Multi B Co,Benedict,081-222-2222,ben@mail.com\n" +
		"Zebra Ltd,Zed,0812345678,z@zebra.com\n"
	assert.Equal(t, want, c.ReadContacts())
}

func Test_Update_Invalid_Email_Keeps_Old_Value_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts("Valid Co,V,081-222-2222,v@co.com\n")

	stdout, stderr, code := c.RunWithInput("valid co\n4\nuser@.com\ny\n", "update")

	require.Equal(t, 0, code, stderr)
	cli.AssertContains(t, stderr, "invalid email address")
	cli.AssertContains(t, stdout, "Canceled.")
	assert.Equal(t, "Valid Co,V,081-222-2222,v@co.com\n", c.ReadContacts())
}

func Test_Update_Reprompts_Field_Choice_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts("Valid Co,V,081-222-2222,v@co.com\n")

	_, stderr, code := c.RunWithInput("valid co\n9\nphone\n2\nVera\ny\n", "update")

	require.Equal(t, 0, code, stderr)
	cli.AssertContains(t, stderr, `unknown field: "9"`)
	cli.AssertContains(t, stderr, `unknown field: "phone"`)
	assert.Equal(t, "Valid Co,Vera,081-222-2222,v@co.com\n", c.ReadContacts())
}

func Test_Update_Only_First_Company_Match_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteContacts(dupRows)

	c.MustRun("update", "DupCo", "-F", "phone", "--value", "999", "-y")

	want := "DupCo,One,999,x@dup.co\n" +
		"DupCo,Two,081,x@dup.co\n" +
		"DupCo,Three,081,x@dup.co\n"
	assert.Equal(t, want, c.ReadContacts())
}

func Test_Update_Errors_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("update", "Nope", "-F", "phone", "--value", "1", "-y")
	cli.AssertContains(t, stderr, "contacts file does not exist")

	c.WriteContacts(multiRows)

	stderr = c.MustFail("update", "Nope", "-F", "phone", "--value", "1", "-y")
	cli.AssertContains(t, stderr, `no matching contact: "Nope"`)

	stderr = c.MustFail("update", "Zed", "-F", "phone", "--value", "1", "-y")
	cli.AssertContains(t, stderr, "no matching contact")

	stderr = c.MustFail("update", "Zebra Ltd", "-F", "fax", "--value", "1")
	cli.AssertContains(t, stderr, `unknown field name: "fax"`)

	assert.Equal(t, multiRows, c.ReadContacts())
}

func Test_Update_Cancel_Paths_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input string
	}{
		{name: "zero company", input: "0\n"},
		{name: "zero field", input: "zebra ltd\n0\n"},
		{name: "zero value", input: "zebra ltd\n3\n0\n"},
		{name: "declined", input: "zebra ltd\n3\n123\nno\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.WriteContacts(multiRows)

			stdout := c.MustRunWithInput(tt.input, "update")

			cli.AssertContains(t, stdout, "Canceled.")
			assert.Equal(t, multiRows, c.ReadContacts())
		})
	}
}
