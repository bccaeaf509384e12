// Package profile profiles a logging workload from the command line.
//
// It supports CPU, heap, block and mutex profiles. The mutex profile is the
// interesting one for file logging: it shows how long goroutines waited on
// a shared log file's lock.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	p := cfg.NewProfiler()
//	if err := p.Start(); err != nil {
//	    return err
//	}
//	runWorkload()
//	return p.Stop()
package profile
