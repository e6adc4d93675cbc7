package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
)

// outputData writes data to a file given with the `output-file` flag or to
// the standard output if the flag is not set. It never overwrites an existing
// file.
func outputData(c *cli.Context, data []byte, perm os.FileMode) error {
	if outputFilePath := c.String("output-file"); len(outputFilePath) > 0 {
		if _, err := os.Stat(outputFilePath); !os.IsNotExist(err) {
			return fmt.Errorf(
				"could not write output to a file; file [%s] already exists",
				outputFilePath,
			)
		}

		err := os.WriteFile(outputFilePath, data, perm)
		if err != nil {
			return fmt.Errorf(
				"failed to write output to a file [%s]: [%v]",
				outputFilePath,
				err,
			)
		}

		fmt.Printf("output stored to a file: %s\n", outputFilePath)
	} else {
		_, err := os.Stdout.Write(append(data, '\n'))
		if err != nil {
			return fmt.Errorf(
				"could not write bytes to stdout: [%v]",
				err,
			)
		}
	}

	return nil
}

// inputData reads data from a file given with the `input-file` flag or, if
// the flag is not set, takes the first command argument.
func inputData(c *cli.Context) ([]byte, error) {
	if inputFilePath := c.String("input-file"); len(inputFilePath) > 0 {
		fileContent, err := os.ReadFile(filepath.Clean(inputFilePath))
		if err != nil {
			return nil, fmt.Errorf("failed to read a file: [%v]", err)
		}
		return fileContent, nil
	}

	argument := c.Args().First()
	if len(argument) == 0 {
		return nil, fmt.Errorf("missing argument")
	}

	return []byte(argument), nil
}
