// Package file provides file-based implementations of the config and
// prompt stores, keeping user-editable state under the config directory.
package file
