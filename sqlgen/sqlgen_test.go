package sqlgen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func statement() *Statement {
	return &Statement{
		RowKey:  "ROW_KEY",
		Table:   "INPUT_TABLE",
		Numeric: []string{"carat"},
		Cases: []Case{
			{Column: "cut", Level: "Fair", Alias: "cut_Fair"},
			{Column: "cut", Level: "Good", Alias: "cut_Good"},
			{Column: "cut", Level: "Ideal", Alias: "cut_Ideal"},
		},
	}
}

func TestStatement_Render(t *testing.T) {
	want := "SELECT [ROW_KEY],\n" +
		"\t[carat],\n" +
		"\t(case when [cut] IS NULL then NULL when [cut] = 'Fair' then 1 else 0 end) AS [cut_Fair],\n" +
		"\t(case when [cut] IS NULL then NULL when [cut] = 'Good' then 1 else 0 end) AS [cut_Good],\n" +
		"\t(case when [cut] IS NULL then NULL when [cut] = 'Ideal' then 1 else 0 end) AS [cut_Ideal]\n" +
		"FROM INPUT_TABLE"

	if got := statement().Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestStatement_RenderDeterministic(t *testing.T) {
	first := statement().Render()
	for i := 0; i < 10; i++ {
		if statement().Render() != first {
			t.Fatal("Render() is not byte-for-byte reproducible")
		}
	}
}

func TestStatement_RenderNoNumeric(t *testing.T) {
	s := &Statement{
		RowKey: "id",
		Table:  "t",
		Cases:  []Case{{Column: "c", Level: "x", Alias: "c_x"}},
	}
	want := "SELECT [id],\n" +
		"\t(case when [c] IS NULL then NULL when [c] = 'x' then 1 else 0 end) AS [c_x]\n" +
		"FROM t"
	if got := s.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestStatement_RenderQuoting(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  string
	}{
		{
			name:  "plain level",
			level: "Ideal",
			want:  "= 'Ideal' ",
		},
		{
			name:  "embedded single quote is doubled",
			level: "O'Neil",
			want:  "= 'O''Neil' ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Statement{
				RowKey: "id",
				Table:  "t",
				Cases:  []Case{{Column: "c", Level: tt.level, Alias: "c_x"}},
			}
			if got := s.Render(); !strings.Contains(got, tt.want) {
				t.Errorf("Render() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	sql := statement().Render()
	if err := Write(&buf, sql); err != nil {
		t.Fatal(err)
	}
	if buf.String() != sql {
		t.Error("Write did not write the statement in full")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestWrite_Failure(t *testing.T) {
	if err := Write(failingWriter{}, "SELECT 1"); err == nil {
		t.Error("expected write failure to propagate")
	}
}
