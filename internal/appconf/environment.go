package appconf

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

var environmentNames = map[Environment]string{
	Development: "development",
	Test:        "test",
	Production:  "production",
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

func parseEnvironment(s string) (Environment, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for env, name := range environmentNames {
		if name == s {
			return env, true
		}
	}
	return Development, false
}

// EnvFlagToEnvironment converts the -env flag value. Unknown values mean Development.
func EnvFlagToEnvironment(env string) Environment {
	e, _ := parseEnvironment(env)
	return e
}

// UnmarshalYAML accepts the same names as the -env flag but, unlike
// EnvFlagToEnvironment, rejects unknown ones.
func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	env, ok := parseEnvironment(s)
	if !ok {
		return fmt.Errorf("line %d: unknown environment %q", node.Line, s)
	}
	*e = env
	return nil
}

func (e Environment) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}
