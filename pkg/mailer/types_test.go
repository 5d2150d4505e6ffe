package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress_String_WithName(t *testing.T) {
	t.Parallel()

	a := Address{Email: "john@example.com", Name: "John Doe"}

	require.Equal(t, "John Doe <john@example.com>", a.String())
}

func TestAddress_String_WithoutName(t *testing.T) {
	t.Parallel()

	a := Address{Email: "john@example.com"}

	require.Equal(t, "john@example.com", a.String())
}

func TestAddress_IsZero(t *testing.T) {
	t.Parallel()

	require.True(t, Address{}.IsZero())
	require.True(t, Address{Name: "Only Name"}.IsZero())
	require.False(t, Address{Email: "a@x.com"}.IsZero())
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Address
		wantErr bool
	}{
		{name: "bare email", input: "a@x.com", want: Address{Email: "a@x.com"}},
		{name: "with name", input: "Jane Doe <jane@example.com>", want: Address{Email: "jane@example.com", Name: "Jane Doe"}},
		{name: "surrounding spaces", input: "  a@x.com ", want: Address{Email: "a@x.com"}},
		{name: "invalid", input: "not an address", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAddress(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseAddressList(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		got, err := ParseAddressList([]string{"b@x.com", "A <a@x.com>"})
		require.NoError(t, err)
		require.Equal(t, []Address{{Email: "b@x.com"}, {Email: "a@x.com", Name: "A"}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := ParseAddressList(nil)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("stops at first invalid", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAddressList([]string{"a@x.com", "broken"})
		require.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestEnvelope_IsEmpty(t *testing.T) {
	t.Parallel()

	var nilEnv *Envelope
	require.True(t, nilEnv.IsEmpty())
	require.True(t, (&Envelope{}).IsEmpty())
	require.False(t, (&Envelope{Recipients: []Address{{Email: "a@x.com"}}}).IsEmpty())
}
