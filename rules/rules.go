// Package rules drops messages matching configured expressions, such as
// implausible readings from a sensor with a failing battery.
//
// Expressions are evaluated with govaluate against the message fields plus
// topic and timestamp:
//
//	topic == "owl" && current1 > 100
package rules

import (
	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barnybug/gorfxcom/pubsub"
)

var log = logrus.WithField("component", "rules")

type Rule struct {
	Source     string
	expression *govaluate.EvaluableExpression
}

func Compile(source string) (*Rule, error) {
	expr, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, errors.Wrapf(err, "rule %q", source)
	}
	return &Rule{Source: source, expression: expr}, nil
}

// Match reports whether the rule evaluates to true for msg. A rule
// referring to a field msg lacks does not match.
func (self *Rule) Match(msg *pubsub.Message) bool {
	result, err := self.expression.Evaluate(msg.Map())
	if err != nil {
		log.Debugf("Rule %q: %s", self.Source, err)
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

type Rules []*Rule

func CompileAll(sources []string) (Rules, error) {
	var rules Rules
	for _, source := range sources {
		rule, err := Compile(source)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Drop returns the first rule matching msg, or nil to keep it.
func (self Rules) Drop(msg *pubsub.Message) *Rule {
	for _, rule := range self {
		if rule.Match(msg) {
			return rule
		}
	}
	return nil
}
