package conso

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dianlight/conso/box"
	"github.com/dianlight/conso/style"
)

type FancyReporterSuite struct {
	suite.Suite
	color *FancyReporter
	plain *FancyReporter
}

func (suite *FancyReporterSuite) SetupTest() {
	suite.color = NewFancyReporter(style.New(true, true))
	suite.plain = NewFancyReporter(style.New(false, false))
}

func record(t LogType, args ...any) *LogRecord {
	return &LogRecord{
		Type:  t,
		Level: typeLevels[t],
		Args:  args,
		Date:  time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
	}
}

func (suite *FancyReporterSuite) TestErrorRendersBadge() {
	out := suite.color.FormatRecord(record(TypeError, "boom"), FormatOptions{})

	// Badge: uppercase type on a red-derived background, black text,
	// surrounded by blank lines.
	suite.Contains(out, "\x1b[41;30m ERROR \x1b[0m")
	suite.True(strings.HasPrefix(out, "\n"))
	suite.Contains(out, "\x1b[0m\n boom")
}

func (suite *FancyReporterSuite) TestWarnRendersBadge() {
	out := suite.color.FormatRecord(record(TypeWarn, "careful"), FormatOptions{})
	suite.Contains(out, "\x1b[43;30m WARN \x1b[0m")
}

func (suite *FancyReporterSuite) TestBadgeOverride() {
	rec := record(TypeInfo, "forced")
	on := true
	rec.Badge = &on
	out := suite.color.FormatRecord(rec, FormatOptions{})
	suite.Contains(out, " INFO ")

	rec = record(TypeError, "suppressed")
	off := false
	rec.Badge = &off
	out = suite.color.FormatRecord(rec, FormatOptions{})
	suite.NotContains(out, " ERROR ")
	suite.Contains(out, "✖")
}

func (suite *FancyReporterSuite) TestInfoRendersIconWithTypeColor() {
	out := suite.color.FormatRecord(record(TypeInfo, "hello"), FormatOptions{})
	suite.Equal("\x1b[36mℹ\x1b[0m hello", out)
}

func (suite *FancyReporterSuite) TestAsciiIconFallback() {
	out := suite.plain.FormatRecord(record(TypeInfo, "hello"), FormatOptions{})
	suite.Equal("i hello", out)
}

func (suite *FancyReporterSuite) TestLogTypeHasNoIcon() {
	out := suite.plain.FormatRecord(record(TypeLog, "bare"), FormatOptions{})
	suite.Equal("bare", out)
}

func (suite *FancyReporterSuite) TestUnknownTypeFallsBackToLevelColor() {
	rec := &LogRecord{Type: LogType("unknownType"), Level: 1, Args: []any{"odd"}}
	off := false
	rec.Badge = &off
	out := suite.color.FormatRecord(rec, FormatOptions{})

	// Level 1 resolves to yellow, not the default gray, and the literal
	// type name stands in for the missing icon.
	suite.Contains(out, "\x1b[33munknownType\x1b[0m")
	suite.NotContains(out, "\x1b[90m")
}

func (suite *FancyReporterSuite) TestUnknownTypeAndLevelFallsBackToGray() {
	rec := &LogRecord{Type: LogType("mystery"), Level: 7, Args: []any{"odd"}}
	out := suite.color.FormatRecord(rec, FormatOptions{})
	suite.Contains(out, "\x1b[90mmystery\x1b[0m")
}

func (suite *FancyReporterSuite) TestRecordIconUsedForUnknownType() {
	rec := &LogRecord{Type: LogType("deploy"), Level: 3, Args: []any{"shipping"}, Icon: "🚀"}
	out := suite.plain.FormatRecord(rec, FormatOptions{})
	suite.Equal("🚀 shipping", out)
}

func (suite *FancyReporterSuite) TestBacktickHighlighting() {
	out := suite.color.FormatRecord(record(TypeLog, "run `go build` first"), FormatOptions{})
	suite.Equal("run \x1b[36mgo build\x1b[0m first", out)
}

func (suite *FancyReporterSuite) TestWideLayoutRightAlignsTagAndDate() {
	rec := record(TypeLog, "message")
	rec.Tag = "app"
	opts := FormatOptions{Columns: 80, Date: true}
	out := suite.plain.FormatRecord(rec, opts)

	right := "app 10:30:00"
	suite.True(strings.HasSuffix(out, right))
	suite.Equal(80-2, style.VisibleWidth(out))
	filler := 80 - style.VisibleWidth("message") - style.VisibleWidth(right) - 2
	suite.Contains(out, "message"+strings.Repeat(" ", filler)+right)
}

func (suite *FancyReporterSuite) TestNarrowLayoutPrefixesTag() {
	rec := record(TypeLog, "message")
	rec.Tag = "app"
	out := suite.plain.FormatRecord(rec, FormatOptions{Columns: 40, Date: true})
	suite.Equal("[app] message", out)
}

func (suite *FancyReporterSuite) TestNarrowLayoutTagIsGray() {
	rec := record(TypeLog, "message")
	rec.Tag = "app"
	out := suite.color.FormatRecord(rec, FormatOptions{Columns: 40})
	suite.True(strings.HasPrefix(out, "\x1b[90m[app]\x1b[0m "))
}

func (suite *FancyReporterSuite) TestAdditionalLinesAppended() {
	out := suite.plain.FormatRecord(record(TypeLog, "first\nsecond `x`\nthird"), FormatOptions{})
	suite.Equal("first\nsecond x\nthird", out)
}

func (suite *FancyReporterSuite) TestTraceAppendsCapturedStack() {
	out := suite.plain.FormatRecord(record(TypeTrace, "checkpoint"), FormatOptions{})
	lines := strings.Split(out, "\n")
	suite.Contains(lines[0], "checkpoint")
	suite.Greater(len(lines), 1)
	suite.Contains(out, "  at ")
}

func (suite *FancyReporterSuite) TestBoxDelegation() {
	rec := record(TypeBox, "release `v1.0`")
	rec.Title = "news"
	rec.Style = &box.Style{BorderStyle: "rounded"}
	out := suite.plain.FormatRecord(rec, FormatOptions{})
	rows := strings.Split(out, "\n")

	suite.True(strings.HasPrefix(rows[0], "╭"))
	suite.Contains(rows[0], "news")
	suite.Contains(out, "release v1.0")
	suite.True(strings.HasSuffix(rows[len(rows)-1], "╯"))
}

func (suite *FancyReporterSuite) TestStreamRouting() {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	ctx := &LogContext{Stdout: stdout, Stderr: stderr}

	suite.Require().NoError(suite.plain.Log(record(TypeError, "bad"), ctx))
	suite.Require().NoError(suite.plain.Log(record(TypeSuccess, "good"), ctx))

	suite.Contains(stderr.String(), "ERROR")
	suite.Contains(stdout.String(), "good")
	suite.True(strings.HasSuffix(stdout.String(), "\n"))
}

func TestFancyReporterSuite(t *testing.T) {
	suite.Run(t, new(FancyReporterSuite))
}
