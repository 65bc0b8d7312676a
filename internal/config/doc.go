// Package config manages user-level settings stored at ~/.isopro/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the directory holding the example notebooks.
package config
