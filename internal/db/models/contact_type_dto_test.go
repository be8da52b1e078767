package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactTypeDTOs_Value(t *testing.T) {
	var nilList ContactTypeDTOs

	v, err := nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	list := ContactTypeDTOs{{Name: "Work", IconPath: "/a/"}, {Name: "R&D <lab>", IconPath: "/b/"}}

	v, err = list.Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Work","iconPath":"/a/"},{"name":"R&D <lab>","iconPath":"/b/"}]`, v)
}

func TestContactTypeDTOs_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    ContactTypeDTOs
		wantErr bool
	}{
		{name: "nil", value: nil, want: ContactTypeDTOs{}},
		{name: "empty string", value: "", want: ContactTypeDTOs{}},
		{name: "json null", value: []byte("null"), want: ContactTypeDTOs{}},
		{
			name:  "bytes",
			value: []byte(`[{"name":"Work","iconPath":"/a/"}]`),
			want:  ContactTypeDTOs{{Name: "Work", IconPath: "/a/"}},
		},
		{
			name:  "string",
			value: `[{"name":"Home","iconPath":"/b/"}]`,
			want:  ContactTypeDTOs{{Name: "Home", IconPath: "/b/"}},
		},
		{name: "broken json", value: "[{", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ContactTypeDTOs

			err := got.Scan(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactTypeDTOs_HasName(t *testing.T) {
	list := ContactTypeDTOs{{Name: "Work"}, {Name: "Home"}}

	assert.True(t, list.HasName("work"))
	assert.True(t, list.HasName("HOME"))
	assert.False(t, list.HasName("Office"))
	assert.False(t, ContactTypeDTOs(nil).HasName("Work"))
}

func TestContactTypeDTOs_Rename(t *testing.T) {
	list := ContactTypeDTOs{
		{Name: "Work", IconPath: "/a/"},
		{Name: "Home", IconPath: "/b/"},
		{Name: "WORK", IconPath: "/old/"},
	}

	n := list.Rename("work", "Office", "/c/")

	assert.Equal(t, 2, n)
	assert.Equal(t, ContactTypeDTOs{
		{Name: "Office", IconPath: "/c/"},
		{Name: "Home", IconPath: "/b/"},
		{Name: "Office", IconPath: "/c/"},
	}, list)
}
