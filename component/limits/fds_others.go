// +build !darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package limits

func RaiseOpenFiles() int {
	return DefaultOpenFiles
}
