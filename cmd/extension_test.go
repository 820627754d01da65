package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// cb-hello prints the environment it receives.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, name := range []string{%q, %q, %q, %q} {
		fmt.Printf("%%s=%%s\n", name, os.Getenv(name))
	}
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvStore, EnvDataDir, EnvCurrency, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "cb-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write cb-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cb-hello: %v", err)
	}

	cbBinaryPath := filepath.Join(tempDir, "cb")
	build = exec.Command("go", "build", "-o", cbBinaryPath, "../cb")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cb binary: %v", err)
	}

	dir := filepath.Join(tempDir, "data")
	args := []string{
		"-data-dir", dir,
		"-currency", "EUR",
		"-v",
		"hello", "world",
	}
	cbCmd := exec.Command(cbBinaryPath, args...)
	cbCmd.Dir = tempDir
	cbCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	cbCmd.Stdout = &stdout
	cbCmd.Stderr = &stderr
	if err := cbCmd.Run(); err != nil {
		t.Fatalf("cb command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvStore + "=dir",
		EnvDataDir + "=" + dir,
		EnvCurrency + "=EUR",
		EnvVerbose + "=true",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("nope", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d; want false, 0", found, code)
	}
}
