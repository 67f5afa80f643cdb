package rule

import (
	"fmt"
	"strings"
)

// Canonical container names.
const (
	ContainerTags = "tags"
	ContainerBugs = "bugs"
	ContainerEnvs = "envs"
)

var containerAliases = []string{"tag", "tags", "bug", "bugs", "env", "envs"}

// NormalizeContainer maps a container alias (tag, bugs, Env, ...) onto its
// canonical name.
func NormalizeContainer(name string) (string, error) {
	c, ok := container(name)
	if !ok {
		return "", fmt.Errorf("%w: unrecognized tag container [%s], allowed: %s",
			ErrInvalidSelectionRule, strings.ToLower(strings.TrimSpace(name)), formatList(containerAliases))
	}
	return c, nil
}

// IsContainer reports whether name is a container alias.
func IsContainer(name string) bool {
	_, ok := container(name)
	return ok
}

func container(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tag", "tags":
		return ContainerTags, true
	case "bug", "bugs":
		return ContainerBugs, true
	case "env", "envs":
		return ContainerEnvs, true
	default:
		return "", false
	}
}
