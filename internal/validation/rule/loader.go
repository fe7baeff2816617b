package rule

import (
	"os"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// Load parses a YAML list of rules and compiles each of them.
// Every rule gets its own environment from envProvider.
//
// The script must contain a list of rules in the format:
//
//   - name: frame_count_exceeded
//     when: "count > 10"
//     message: frame count exceeds 10
func Load(script []byte, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	rules := []Rule{}

	err := yaml.Unmarshal(script, &rules)
	if err != nil {
		return nil, err
	}

	for i := range rules {
		env, err := envProvider()
		if err != nil {
			return nil, err
		}

		err = rules[i].Init(env)
		if err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// LoadFromFile reads the rule script from file and passes it to Load.
func LoadFromFile(file string, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Load(content, envProvider)
}
