// mkicon draws the leaf logo and saves it as logo.ico
// (256, 128, 64, 48, 32 and 16 px) in the working directory.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/leaficon/leaf"
	"github.com/sirupsen/logrus"
)

// plainFormatter prints the bare message, followed by the error if any.
type plainFormatter struct{}

func (plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if err, ok := e.Data[logrus.ErrorKey]; ok {
		return []byte(fmt.Sprintf("%s: %v\n", e.Message, err)), nil
	}
	return []byte(e.Message + "\n"), nil
}

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(plainFormatter{})

	if err := leaf.GenerateFile(leaf.OutputPath); err != nil {
		logrus.WithError(err).Fatal("icon generation failed")
	}
	logrus.Infof("%s created successfully.", leaf.OutputPath)
}
