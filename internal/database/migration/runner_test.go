package migration

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	migs, err := Load(Files())
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "career_catalog", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS career_roles")
	assert.Equal(t, int64(2), migs[1].Version)
	assert.Contains(t, migs[1].SQL, "skill_synonym_variants")
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoad_OrdersAndFilters(t *testing.T) {
	src := fstest.MapFS{
		"V10__later.sql":  {Data: []byte("SELECT 10;")},
		"V2__second.sql":  {Data: []byte("  SELECT 2;\n")},
		"README.md":       {Data: []byte("notes")},
		"v3__lower.sql":   {Data: []byte("SELECT 3;")},
		"sub/V4__dir.sql": {Data: []byte("SELECT 4;")},
	}

	migs, err := Load(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(2), migs[0].Version)
	assert.Equal(t, "SELECT 2;", migs[0].SQL)
	assert.Equal(t, int64(10), migs[1].Version)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  fstest.MapFS
		want string
	}{
		{
			name: "empty file",
			src:  fstest.MapFS{"V1__empty.sql": {Data: []byte(" \n")}},
			want: "empty migration file",
		},
		{
			name: "duplicate version",
			src: fstest.MapFS{
				"V1__a.sql":  {Data: []byte("SELECT 1;")},
				"V01__b.sql": {Data: []byte("SELECT 1;")},
			},
			want: "duplicate migration version",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}

func TestRunner_NilDB(t *testing.T) {
	err := Runner{}.Run(context.Background(), nil)
	require.Error(t, err)
}
