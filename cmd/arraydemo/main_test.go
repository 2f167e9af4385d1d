package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/logging"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems(" 5, 3,,8 ,1")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1}, items)

	_, err = parseItems("1,two")
	assert.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(Configuration{Items: "5,3,8,1", Growth: "exact"}, &out))

	got := out.String()
	assert.Contains(t, got, "array:  [5 3 8 1]\n")
	assert.Contains(t, got, "max:    8\n")
	assert.Contains(t, got, "rank(3)=1 pred=1\n")
	assert.Contains(t, got, "rank(1)=0 pred=ArgumentOutOfRange\n")
	assert.Contains(t, got, "sorted: [1 3 5 8]\n")
	assert.Contains(t, got, "index(5)=2 pred=3 succ=8\n")
	assert.Contains(t, got, "index(8)=3 pred=5 succ=InvalidIndex\n")
	assert.Contains(t, got, "index(1)=0 pred=InvalidIndex succ=3\n")
}

func TestRunHeadInsertion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(Configuration{Items: "1,2,3", Growth: "doubling", Head: true}, &out))
	assert.Contains(t, out.String(), "array:  [3 2 1]\n")
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(Configuration{Items: "", Growth: "exact"}, &out))
	assert.Contains(t, out.String(), "max: Empty\n")
}

func TestRunRejectsBadGrowth(t *testing.T) {
	var out bytes.Buffer
	err := run(Configuration{Items: "1", Growth: "tripling"}, &out)
	assert.ErrorIs(t, err, result.ArgumentOutOfRange)
}

func TestRunMainClosesLogOnFailure(t *testing.T) {
	require.NoError(t, logging.Close())
	path := filepath.Join(t.TempDir(), "demo.log")
	var out bytes.Buffer

	code := runMain(Configuration{Items: "1,x", Growth: "exact", LogFile: path, LogFormat: "text"}, &out)
	assert.Equal(t, 1, code)

	// A closed logger lets Init succeed again.
	require.NoError(t, logging.Init(logging.Config{}))
	require.NoError(t, logging.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "demo failed")
}

func TestRunMainSuccess(t *testing.T) {
	require.NoError(t, logging.Close())
	var out bytes.Buffer
	code := runMain(Configuration{Items: "2,1", Growth: "exact", LogFile: filepath.Join(t.TempDir(), "ok.log")}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "sorted: [1 2]\n")
}
