package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	n, err := s.Save("product-1.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.EqualValues(t, len("png-bytes"), n)

	data, err := os.ReadFile(filepath.Join(dir, "product-1.png"))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))

	// 同名檔案不覆蓋
	_, err = s.Save("product-1.png", strings.NewReader("other"))
	require.Error(t, err)

	require.NoError(t, s.Remove("product-1.png"))
	_, err = os.Stat(filepath.Join(dir, "product-1.png"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, s.Remove("product-1.png"))
}

func TestLocalStorage_InvalidName(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../evil.png", "a/b.png", ".hidden"} {
		_, err := s.Save(name, strings.NewReader("x"))
		require.ErrorIs(t, err, ErrInvalidFileName, name)
		require.ErrorIs(t, s.Remove(name), ErrInvalidFileName, name)
	}
}
