package actions

import (
	"strconv"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/format"
)

const defaultHistoryLimit = 20

// HistoryParams declares the optional limit of the history command. Zero
// shows every entry.
var HistoryParams = args.Params(args.Param("limit", args.Uint, "Entries to show, 0 for all"))

// History prints recent journal entries, oldest first. The limit defaults
// to the history_limit setting; zero shows everything.
func History(s *Session, rest []string) error {
	limit := defaultHistoryLimit
	if value, ok := s.Config.Get("history_limit"); ok {
		if n, err := strconv.Atoi(value); err == nil {
			limit = n
		}
	}

	if len(rest) > 0 {
		v, err := args.Bind(HistoryParams, rest)
		if err != nil {
			return err
		}
		limit = int(v.Uint("limit"))
	}

	entries, err := s.Journal.Recent(limit)
	if err != nil {
		return err
	}

	st := s.styler()
	clock := s.clock()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		s.printf("%s  %s  %s%s\n",
			st.Muted(strconv.FormatInt(e.ID, 10)),
			st.Muted(format.Time(e.CreatedAt, clock)),
			e.Line,
			outcome(st, e))
	}
	return nil
}

func outcome(st domain.Styler, e domain.JournalEntry) string {
	if !e.Failed() {
		return ""
	}
	return "  " + st.Error("("+e.Error+")")
}
