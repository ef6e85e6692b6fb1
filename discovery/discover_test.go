package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-openmethods/openmethods/core"
	"github.com/go-openmethods/openmethods/discovery"
)

// findByName returns the ClassInfo named suffix (matched by package-path
// suffix, since discovery qualifies names with the full import path).
func findByName(classes []core.ClassInfo, suffix string) core.ClassInfo {
	for _, c := range classes {
		name := c.Name()
		if len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix {
			return c
		}
	}

	return nil
}

func TestFromPackages_DiscoversCoreTypes(t *testing.T) {
	source, err := discovery.FromPackages("github.com/go-openmethods/openmethods/core")
	require.NoError(t, err)
	require.NotNil(t, source)

	classes := source.Classes()
	require.NotEmpty(t, classes, "expected at least one exported struct/interface type")

	classInfo := findByName(classes, ".ClassInfo")
	require.NotNil(t, classInfo, "core.ClassInfo should be discovered as an interface class")
	assert.False(t, classInfo.IsConcrete())

	class := findByName(classes, ".Class")
	require.NotNil(t, class, "core.Class should be discovered as a concrete struct class")
	assert.True(t, class.IsConcrete())
}

func TestFromPackages_UnknownPackageErrors(t *testing.T) {
	_, err := discovery.FromPackages("github.com/go-openmethods/openmethods/no-such-package")
	assert.Error(t, err)
}
