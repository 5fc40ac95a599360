//go:build swfdebug

package display

const debugContainer = true
