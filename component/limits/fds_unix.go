// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package limits

import "golang.org/x/sys/unix"

// RaiseOpenFiles lifts the soft RLIMIT_NOFILE to the hard limit and return
// the soft limit in effect afterwards
func RaiseOpenFiles() int {
	limits := &unix.Rlimit{}

	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, limits); err != nil {
		return DefaultOpenFiles
	}

	if limits.Cur != limits.Max {
		raised := *limits
		raised.Cur = raised.Max
		if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &raised); err == nil {
			limits = &raised
		}
	}

	if limits.Cur == unix.RLIM_INFINITY {
		return InfiniteOpenFiles
	}

	n := int(limits.Cur)
	if n < 0 || n > InfiniteOpenFiles {
		return InfiniteOpenFiles
	}
	return n
}
