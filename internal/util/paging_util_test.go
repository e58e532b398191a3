package util

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePageQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  PageQuery
	}{
		{"defaults", "", PageQuery{Page: 1, Limit: 12}},
		{"explicit", "page=3&limit=5", PageQuery{Page: 3, Limit: 5}},
		{"garbage", "page=abc&limit=-1", PageQuery{Page: 1, Limit: 12}},
		{"capped", "limit=1000", PageQuery{Page: 1, Limit: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.want, ParsePageQuery(q, 12))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(PageQuery{Page: 1, Limit: 10}, 25)
	require.NotNil(t, p.Next)
	require.Equal(t, 2, p.Next.Page)
	require.Nil(t, p.Prev)

	p = BuildPagination(PageQuery{Page: 3, Limit: 10}, 25)
	require.Nil(t, p.Next)
	require.NotNil(t, p.Prev)
	require.Equal(t, 2, p.Prev.Page)

	p = BuildPagination(PageQuery{Page: 1, Limit: 10}, 10)
	require.Nil(t, p.Next)
	require.Nil(t, p.Prev)
}
