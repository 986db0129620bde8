package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpipe/pkg/langdetect"
)

func TestDetectPatterns(t *testing.T) {
	t.Parallel()

	det := langdetect.New()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "go package clause",
			content: "package main\n\nfunc main() {}\n",
			want:    "go",
		},
		{
			name:    "python def",
			content: "def greet(name):\n    return f\"hi {name}\"\n",
			want:    "python",
		},
		{
			name:    "python dunder main",
			content: "if __name__ == \"__main__\":\n    run()\n",
			want:    "python",
		},
		{
			name:    "json object",
			content: "{\n  \"name\": \"mdpipe\",\n  \"ok\": true\n}\n",
			want:    "json",
		},
		{
			name:    "yaml keys",
			content: "host: localhost\nport: 8080\n",
			want:    "yaml",
		},
		{
			name:    "html document",
			content: "<!DOCTYPE html>\n<html><body></body></html>\n",
			want:    "html",
		},
		{
			name:    "sql select",
			content: "SELECT id, name FROM users WHERE id = 1;\n",
			want:    "sql",
		},
		{
			name:    "dockerfile",
			content: "FROM golang:1.24\nRUN go build ./...\n",
			want:    "dockerfile",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, det.Detect([]byte(tc.content)))
		})
	}
}

func TestDetectShebang(t *testing.T) {
	t.Parallel()

	det := langdetect.New()

	assert.Equal(t, "bash", det.Detect([]byte("#!/bin/bash\necho hello\n")))
	assert.Equal(t, "python", det.Detect([]byte("#!/usr/bin/env python\nprint(1)\n")))
}

func TestDetectEmpty(t *testing.T) {
	t.Parallel()

	det := langdetect.New()

	assert.Empty(t, det.Detect(nil))
	assert.Empty(t, det.Detect([]byte("")))
	assert.Empty(t, det.Detect([]byte("   \n\t\n")))
}

func TestDetectZeroValue(t *testing.T) {
	t.Parallel()

	var det langdetect.Detector

	assert.Equal(t, "go", det.Detect([]byte("package widgets\n")))
}
