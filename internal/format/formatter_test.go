package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_SectionMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"square marker becomes h2", "■計画の概要", "## 計画の概要"},
		{"detail marker becomes h3", "■詳細の説明", "### 詳細の説明"},
		{"bracket heading", "【対象校】", "### 対象校"},
		{"bracket heading with body", "【対象校】開成と麻布", "### 対象校\n開成と麻布"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestFormatLine_Lists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bullet glyph", "・最初の項目", "- 最初の項目"},
		{"diamond glyph", "◆次の項目", "- 次の項目"},
		{"numbered list ideographic comma", "1、最初の手順", "1. 最初の手順"},
		{"numbered list dot", "2. 次の手順", "2. 次の手順"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLine(tt.input))
		})
	}
}

func TestFormat_CollapsesBlankRuns(t *testing.T) {
	got := Format("## 見出し\n\n\n\n本文")

	assert.NotContains(t, got, "\n\n\n")
}

func TestFormat_AutoHeadingsWhenNoneExist(t *testing.T) {
	got := Format("このメモの目的は検証です\nその他の本文")

	assert.True(t, strings.HasPrefix(got, "## 概要"), "keyword-derived heading expected, got: %s", got)
}

func TestFormat_ExistingMarkdownUntouched(t *testing.T) {
	input := "## 既存の見出し\n\n- 箇条書き"

	assert.Equal(t, input, Format(input))
}
