package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gnoswap-labs/argmatch/check"
)

// loadSignatures reads the signature table of the configuration file. A
// missing default configuration is not an error.
func loadSignatures(configurationPath string) (map[string]string, error) {
	if configurationPath == "" {
		configurationPath = check.DefaultConfigPath
	}
	config, err := check.LoadConfig(configurationPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && configurationPath == check.DefaultConfigPath {
			return nil, nil
		}
		return nil, err
	}
	return config.Signatures, nil
}

// resolvePattern returns the literal pattern, or the pattern registered
// under signature in the configuration file.
func resolvePattern(configurationPath, pattern, signature string) (string, error) {
	switch {
	case pattern != "" && signature != "":
		return "", errors.New("use either a pattern or a signature, not both")
	case signature == "":
		return pattern, nil
	}

	signatures, err := loadSignatures(configurationPath)
	if err != nil {
		return "", err
	}
	p, ok := signatures[signature]
	if !ok {
		return "", fmt.Errorf("unknown signature %q", signature)
	}
	return p, nil
}
