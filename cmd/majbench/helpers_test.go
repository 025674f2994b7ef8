package main

import (
	"bytes"
	"fmt"
	"testing"

	"majbench/internal/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// setupTest resets the shared store, tracker and viper state so commands run
// deterministically and independently.
func setupTest(t *testing.T) {
	t.Helper()
	viper.Reset()
	config.SetDefaults()
	viper.Set("seed", int64(42))
	store.Clear()
	tracker = nil

	t.Cleanup(func() {
		viper.Reset()
		store.Clear()
		tracker = nil
	})
}

func newTestCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd
}

// mockAsk returns an askOneFunc that pops scripted responses in order.
func mockAsk(responses ...interface{}) func(survey.Prompt, interface{}, ...survey.AskOpt) error {
	i := 0
	return func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		if i >= len(responses) {
			return fmt.Errorf("no scripted response for prompt %d", i)
		}
		r := responses[i]
		i++
		switch v := response.(type) {
		case *string:
			v2, ok := r.(string)
			if !ok {
				return fmt.Errorf("response %d: expected string, got %T", i-1, r)
			}
			*v = v2
		case *bool:
			v2, ok := r.(bool)
			if !ok {
				return fmt.Errorf("response %d: expected bool, got %T", i-1, r)
			}
			*v = v2
		default:
			return fmt.Errorf("unsupported response target %T", response)
		}
		return nil
	}
}
