package calclang

// Run tokenizes, parses and evaluates src with a fresh environment.
// Lexical and syntax errors abort before any evaluation happens.
func Run(name string, src string) (float64, error) {
	return RunWith(name, src, NewEnv())
}

// RunWith evaluates src against a caller-supplied environment, so bindings
// can persist across multiple inputs of one session.
func RunWith(name string, src string, env *Env) (float64, error) {
	prog, err := Parse(NewSource(name, src))
	if err != nil {
		return 0, err
	}
	return env.Evaluate(prog)
}
