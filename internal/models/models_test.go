package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestUserSchema(t *testing.T) {
	s := parseSchema(t, &User{})

	assert.Equal(t, "users", s.Table)

	id := s.LookUpField("ID")
	require.NotNil(t, id)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoIncrement)

	username := s.LookUpField("username")
	require.NotNil(t, username)
	assert.True(t, username.NotNull)
	assert.Equal(t, "varchar(100)", string(username.DataType))

	email := s.LookUpField("email")
	require.NotNil(t, email)
	assert.True(t, email.NotNull)
	assert.Equal(t, "varchar(255)", string(email.DataType))

	assert.NotNil(t, s.LookUpField("created_at"))
	assert.NotNil(t, s.LookUpField("updated_at"))

	unique := map[string]bool{}
	for _, idx := range s.ParseIndexes() {
		if idx.Class == "UNIQUE" {
			for _, f := range idx.Fields {
				unique[f.DBName] = true
			}
		}
	}
	assert.True(t, unique["username"])
	assert.True(t, unique["email"])
}

func TestTaskSchema(t *testing.T) {
	s := parseSchema(t, &Task{})

	assert.Equal(t, "tasks", s.Table)

	userID := s.LookUpField("user_id")
	require.NotNil(t, userID)
	assert.True(t, userID.NotNull)

	title := s.LookUpField("title")
	require.NotNil(t, title)
	assert.True(t, title.NotNull)
	assert.Equal(t, "varchar(255)", string(title.DataType))

	description := s.LookUpField("description")
	require.NotNil(t, description)
	assert.False(t, description.NotNull)
	assert.Equal(t, "text", string(description.DataType))

	status := s.LookUpField("status")
	require.NotNil(t, status)
	assert.Equal(t, "varchar(50)", string(status.DataType))
	assert.True(t, status.HasDefaultValue)
	assert.Equal(t, "pending", status.DefaultValueInterface)

	assert.NotNil(t, s.LookUpField("created_at"))
	assert.NotNil(t, s.LookUpField("updated_at"))

	names := map[string]bool{}
	for _, idx := range s.ParseIndexes() {
		names[idx.Name] = true
	}
	assert.True(t, names["idx_tasks_user_id"])
	assert.True(t, names["idx_tasks_status"])
}
