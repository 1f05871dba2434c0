package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeys(t *testing.T) {
	m := map[int]string{3: "three", 1: "one", 4: "four", 2: "two", 0: "zero"}
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, MapKeys(m))
	assert.Empty(t, MapKeys(map[string]int{}))
}
