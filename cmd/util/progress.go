package util

// Progress reports how many of a known number of structures have been
// processed. Errors are printed as they arrive and counted.
type Progress struct {
	errs chan error
	done chan struct{}
}

func NewProgress(total int) Progress {
	p := Progress{make(chan error), make(chan struct{})}
	go func() {
		completed, errorCount := 0, 0
		for err := range p.errs {
			if err == nil {
				completed++
			} else {
				errorCount++
				if FlagVerbose {
					Warnf("\r%s                                    \n", err)
				} else {
					Warnf("%s", err)
				}
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Verbosef("\r%d of %d structures analyzed (%0.2f%% done, %d errors)",
				completed, total, ratio, errorCount)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

// JobDone records one structure, failed if err is not nil.
func (p Progress) JobDone(err error) {
	p.errs <- err
}

// Close waits for every report to be printed.
func (p Progress) Close() {
	close(p.errs)
	<-p.done
}
