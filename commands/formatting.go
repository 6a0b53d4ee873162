package commands

import (
	"fmt"
	"time"

	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/util"
	jsoniter "github.com/json-iterator/go"
)

// helper functions for formatting table cells
func i(i int) string {
	return fmt.Sprintf("%d", i)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func day(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(util.DayFormat)
}

func cell(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// printJSON writes a result as indented json to standard out
func printJSON(v interface{}) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// pageFooter summarizes the pagination state under a table
func pageFooter(page *query.Page) string {
	return fmt.Sprintf("page %d of %d (%d results)",
		page.PageNo, page.TotalPages, page.TotalResults)
}
