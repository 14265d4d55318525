// Package catalog provides the file-backed source catalog: category
// and location enumeration plus tag matching for task dispatch.
package catalog
