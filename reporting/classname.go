package reporting

import (
	"path/filepath"
	"strings"
)

// DeriveClassname turns a feature's source path into the dotted classname
// used in the report: the path relative to the first matching search root
// (or just the base name when no root matches), with the file extension
// stripped and path separators replaced by dots.
//
// Example: "features/auth/login.feature" with search root "features"
// becomes "auth.login".
func DeriveClassname(featurePath string, searchRoots []string) string {
	name := ""
	for _, root := range searchRoots {
		if root != "" && strings.HasPrefix(featurePath, root) {
			name = strings.TrimLeft(strings.TrimPrefix(featurePath, root), `/\`)
			break
		}
	}
	if name == "" {
		name = filepath.Base(featurePath)
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, `\`, "/")
	return strings.ReplaceAll(name, "/", ".")
}
