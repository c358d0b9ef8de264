// internal/models/user_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{}

	require.NoError(t, user.SetPassword("Sunflowers1888!"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Sunflowers1888!", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("Sunflowers1888!"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

func TestPasswordHashNotSerialized(t *testing.T) {
	user := &User{Username: "collector42", Email: "c@example.com"}
	require.NoError(t, user.SetPassword("Sunflowers1888!"))

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "password_hash")
	assert.NotContains(t, string(data), user.PasswordHash)
}

func TestJSONBScanAndValue(t *testing.T) {
	original := JSONB{"bio": "Painter from Oaxaca", "links": []interface{}{"https://example.com"}}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSONB
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "Painter from Oaxaca", scanned["bio"])
}

func TestJSONBScanNil(t *testing.T) {
	var scanned JSONB
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}
