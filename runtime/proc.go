package runtime

import (
	"os"
	"os/exec"
	"os/user"
	"strings"
)

// Exec, GetWd, GetUsername, GetUserHomeDir, ChangeDir, GetEnv are
// grounded on the teacher's std/os.go execCmd/getcwd/userFunc/home/
// getenv, each adapted to return a plain value instead of a builtin
// error object: an empty string on failure, or false for ChangeDir.

// Exec runs command through the host shell and returns its combined
// trimmed output, matching the teacher's std/os.go execCmd.
func Exec(command string) string {
	out, err := exec.Command("sh", "-c", command).CombinedOutput()
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\n")
}

// GetWd matches the teacher's std/os.go getcwd.
func GetWd() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// GetUsername matches the teacher's std/os.go userFunc.
func GetUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

// GetUserHomeDir matches the teacher's std/os.go home.
func GetUserHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// ChangeDir matches the teacher's std/os.go chdir-adjacent behavior.
func ChangeDir(path string) bool {
	return os.Chdir(path) == nil
}

// GetEnv matches the teacher's std/os.go getenv.
func GetEnv(name string) string {
	return os.Getenv(name)
}
