package loader

import "strings"

// Join builds the request target for a relative path under root.
//
// Exactly one separator ends up between the two parts: leading "/" or "\"
// on the path are dropped, then if root already ends with "/" or "\" the path
// is appended as is, otherwise "/" is inserted. A rooted path is therefore
// still resolved under root.
// An empty root yields the path unchanged, and so does a path that is already
// an absolute URL ("scheme://...").
func Join(root, relativePath string) string {
	if root == "" || hasScheme(relativePath) {
		return relativePath
	}

	relativePath = strings.TrimLeft(relativePath, `/\`)

	if strings.HasSuffix(root, "/") || strings.HasSuffix(root, `\`) {
		return root + relativePath
	}

	return root + "/" + relativePath
}

func hasScheme(p string) bool {
	scheme, _, found := strings.Cut(p, "://")
	if !found || scheme == "" {
		return false
	}

	for i := range len(scheme) {
		c := scheme[i]

		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return true
}
