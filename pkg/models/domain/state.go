package domain

// ReportState is everything the report store keeps: the working report and the save history.
type ReportState struct {
	Report       Report
	SavedReports []Report
}

func (s ReportState) Clone() ReportState {
	out := ReportState{Report: s.Report.Clone()}
	if s.SavedReports != nil {
		out.SavedReports = make([]Report, len(s.SavedReports))
		for i, r := range s.SavedReports {
			out.SavedReports[i] = r.Clone()
		}
	}
	return out
}
