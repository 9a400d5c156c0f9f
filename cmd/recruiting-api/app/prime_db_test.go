package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePassword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "secret", sanitizePassword("  secret\n"))
	assert.Equal(t, "it''s", sanitizePassword("it's"))
}

func TestExecutePrimeTemplate(t *testing.T) {
	t.Parallel()

	sql, err := executePrimeTemplate("app_user", "p''w")
	require.NoError(t, err)
	assert.Contains(t, sql, `CREATE USER "app_user" WITH PASSWORD 'p''w'`)
	assert.Contains(t, sql, `GRANT recruiting_api TO "app_user"`)
	assert.Contains(t, sql, "CREATE ROLE "+fixedRoleName)
}

func TestExecutePrimeTemplate_PasswordWithDollarQuotes(t *testing.T) {
	t.Parallel()

	sql, err := executePrimeTemplate("app_user", "a$$b")
	require.NoError(t, err)

	// The password block is closed by its own tag, not by a plain $$
	start := strings.Index(sql, "DO "+primeQuoteTag)
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(sql[start+3+len(primeQuoteTag):], primeQuoteTag)
	require.GreaterOrEqual(t, end, 0)
	assert.Contains(t, sql[start:start+3+len(primeQuoteTag)+end], `WITH PASSWORD 'a$$b'`)
}

func TestPrimeDB_DryRun(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("hunter2\n"))
	root.SetArgs([]string{"prime-db", "app_user", "--config", "unused.yaml", "--dry-run"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `CREATE USER "app_user" WITH PASSWORD 'hunter2'`)
}

func TestPrimeDB_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    string
		stdin   string
		wantErr string
	}{
		{name: "quoted username", user: `bob"; DROP TABLE x; --`, stdin: "pw", wantErr: "invalid username"},
		{name: "blank username", user: "  ", stdin: "pw", wantErr: "username cannot be empty"},
		{name: "empty password", user: "app_user", stdin: "  \n", wantErr: "password cannot be empty"},
		{name: "password with quote tag", user: "app_user", stdin: "x$prime$y", wantErr: "password cannot contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := NewRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetIn(strings.NewReader(tt.stdin))
			root.SetArgs([]string{"prime-db", tt.user, "--config", "unused.yaml", "--dry-run"})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
