package catalog

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"jacket-manager/core/database"
	"jacket-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const sampleJSON = `[
  {"isbn":"111","has_jacket":true,"book_description":"First Title Cover","trim_height":280,"trim_width":216},
  {"isbn":"222","has_jacket":false}
]`

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cup_data.json")
	assert.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	src := &FileSource{Path: path}
	records, err := src.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "111", records[0].ISBN)
	assert.True(t, records[0].HasJacket)
}

func TestFileSource_LoadMissingFile(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}
	_, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "failed to read catalog file")
}

func TestFileSource_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	src := &FileSource{Path: path}
	_, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "malformed catalog JSON")
}

func TestStorageSource_Load(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "production", "catalog/cup_data.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(sampleJSON))), nil)

	src := &StorageSource{Client: mockClient, Bucket: "production", Object: "catalog/cup_data.json"}
	records, err := src.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	mockClient.AssertExpectations(t)
}

func TestDatabaseSource_Load(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(&RecordModel{}))
	assert.NoError(t, db.Create(&RecordModel{
		ISBN:       "333",
		HasJacket:  true,
		TrimHeight: "280",
		TrimWidth:  "216",
		Customer:   "CUP",
	}).Error)

	src := &DatabaseSource{DB: db}
	records, err := src.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "333", records[0].ISBN)
	assert.Equal(t, "280", records[0].TrimHeight.String())
}

func TestNewSource_Validation(t *testing.T) {
	_, err := NewSource(Config{Source: "carrier-pigeon"}, nil, "", nil)
	assert.ErrorContains(t, err, "unknown catalog source")

	_, err = NewSource(Config{Source: SourceStorage}, nil, "", nil)
	assert.ErrorContains(t, err, "requires a storage client")

	_, err = NewSource(Config{Source: SourceDatabase}, nil, "", nil)
	assert.ErrorContains(t, err, "requires a database connection")

	src, err := NewSource(Config{Source: SourceFile, Path: "x.json"}, nil, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "file x.json", src.Name())
}
