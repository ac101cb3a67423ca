package trace

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV exports the trace as step,time,head,served_id,moved,cumulative
// rows. time is Cumulative scaled by timePerCylinder (seek-time units per
// cylinder of travel); served_id is empty for the initial position and
// synthetic steps.
func (t *Trace) WriteCSV(w io.Writer, timePerCylinder float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "time", "head", "served_id", "moved", "cumulative"}); err != nil {
		return err
	}
	for _, s := range t.Steps {
		served := ""
		if s.ServedID != nil {
			served = strconv.Itoa(*s.ServedID)
		}
		row := []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(float64(s.Cumulative)*timePerCylinder, 'f', -1, 64),
			strconv.Itoa(s.Head),
			served,
			strconv.Itoa(s.Moved),
			strconv.Itoa(s.Cumulative),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
