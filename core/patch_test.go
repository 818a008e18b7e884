package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apkasten906/ai-pairing-metrics/schema"
)

const samplePatch = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -10,0 +11,2 @@ func run() {
+	count := compute()
+	report(count)
diff --git a/old.go b/old.go
deleted file mode 100644
index 3333333..0000000
--- a/old.go
+++ /dev/null
@@ -1,2 +0,0 @@
-func legacy() {}
-
diff --git a/util/helper.go b/util/helper.go
new file mode 100644
index 0000000..4444444
--- /dev/null
+++ b/util/helper.go
@@ -0,0 +1,2 @@
+func helper() int {
+	count := compute()
`

func TestParseAddedLines(t *testing.T) {
	added := ParseAddedLines(samplePatch)

	assert.Equal(t, []schema.AddedLine{
		{Path: "main.go", Text: "\tcount := compute()"},
		{Path: "main.go", Text: "\treport(count)"},
		{Path: "util/helper.go", Text: "func helper() int {"},
		{Path: "util/helper.go", Text: "\tcount := compute()"},
	}, added)
}

func TestParseAddedLinesDeletedFile(t *testing.T) {
	// A pure deletion has "+++ /dev/null" and contributes nothing.
	patch := "diff --git a/gone.go b/gone.go\n" +
		"--- a/gone.go\n" +
		"+++ /dev/null\n" +
		"@@ -1 +0,0 @@\n" +
		"-func gone() {}\n"

	assert.Empty(t, ParseAddedLines(patch))
}

func TestParseAddedLinesIgnoresStrayAdditions(t *testing.T) {
	// Added lines before any recognized file path are dropped.
	patch := "+orphan line\n" +
		"diff --git a/a.go b/a.go\n" +
		"+++ b/a.go\n" +
		"+kept line\n"

	added := ParseAddedLines(patch)
	assert.Equal(t, []schema.AddedLine{{Path: "a.go", Text: "kept line"}}, added)
}

func TestParseAddedLinesEmptyPatch(t *testing.T) {
	assert.Empty(t, ParseAddedLines(""))
}

func TestDistinctFiles(t *testing.T) {
	added := []schema.AddedLine{
		{Path: "b.go", Text: "x"},
		{Path: "a.go", Text: "y"},
		{Path: "b.go", Text: "z"},
	}

	// First-seen order, not sorted.
	assert.Equal(t, []string{"b.go", "a.go"}, DistinctFiles(added))
	assert.Nil(t, DistinctFiles(nil))
}
