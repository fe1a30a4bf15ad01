//go:build !darwin

package system

func platformLocale() string { return "" }
