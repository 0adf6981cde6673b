package mysql

import (
	"testing"

	"github.com/reusedev/imagen-studio/config"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	c := config.Default().MySQL
	c.Host = "db"
	c.Username = "studio"
	c.Password = "secret"
	c.Database = "imagen"
	require.Equal(t, "studio:secret@tcp(db:3306)/imagen?charset=utf8mb4&parseTime=True&loc=Local", DSN(c))
	require.False(t, Enabled())
}
