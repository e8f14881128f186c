package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/reusee/calc/calclang"
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/calc/modes"
	"github.com/reusee/calc/vars"
	"github.com/reusee/dscope"
)

var (
	evalSources = cmds.Collect[string]("-e")
	debugAST    = cmds.Switch("-debug-ast")
	maxDepth    = cmds.Var[int]("-max-depth")
)

func main() {
	args := os.Args[1:]

	// first non-flag argument is the script path
	var scriptPath string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		scriptPath = args[0]
		args = args[1:]
	}
	ce(cmds.Execute(args))

	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		config configs.Config,
		dump debugs.Dump,
	) {

		depth := vars.FirstNonZero(
			vars.DerefOrZero(maxDepth),
			config.MaxDepth,
			calclang.DefaultMaxDepth,
		)

		run := func(name string, src string, env *calclang.Env) (float64, error) {
			ctx := logs.WithScript(ctx, logs.Script(name))
			begin := time.Now()

			parser := calclang.NewParser(calclang.NewTokenizer(
				calclang.NewSource(name, src),
			))
			parser.MaxDepth = depth
			prog, err := parser.ParseProgram()
			if err != nil {
				return 0, err
			}

			if *debugAST || config.Trace {
				dump(ctx, name, prog)
			}

			result, err := env.Evaluate(prog)
			logger.DebugContext(ctx, "evaluated",
				"statements", len(prog.Statements),
				"duration", time.Since(begin),
			)
			return result, err
		}

		switch {

		case len(*evalSources) > 0:
			env := calclang.NewEnv()
			for _, src := range *evalSources {
				result, err := run("-e", src, env)
				ce(err)
				fmt.Println(formatResult(result))
			}

		case scriptPath != "":
			content, err := os.ReadFile(scriptPath)
			ce(err)
			logger.DebugContext(ctx, "loaded",
				"path", scriptPath,
				"bytes", len(content),
			)
			result, err := run(scriptPath, string(content), calclang.NewEnv())
			ce(err)
			fmt.Println(formatResult(result))

		default:
			repl(config.Prompt, run)
		}

	})
}

func repl(prompt string, run func(string, string, *calclang.Env) (float64, error)) {
	env := calclang.NewEnv()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			result, err := run("repl", line, env)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Println(formatResult(result))
			}
		}
		fmt.Fprint(os.Stderr, prompt)
	}
}

func formatResult(result float64) string {
	return strconv.FormatFloat(result, 'g', -1, 64)
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}
}
