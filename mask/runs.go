package mask

import "github.com/mhr3/pwstat/ascii"

// Split calls fn for every maximal run of bytes of line that share a class,
// left to right. With fold set, upper and lower case letters share a class.
// The class passed to fn is the class bit of the run's bytes.
func Split(line []byte, fold bool, fn func(run []byte, class uint8) error) error {
	if len(line) == 0 {
		return nil
	}

	classOf := ascii.Class
	if fold {
		classOf = ascii.SimpleClass
	}

	start := 0
	last := classOf(line[0])
	for i := 1; i < len(line); i++ {
		c := classOf(line[i])
		if c == last {
			continue
		}
		if err := fn(line[start:i], last); err != nil {
			return err
		}
		start, last = i, c
	}
	return fn(line[start:], last)
}
