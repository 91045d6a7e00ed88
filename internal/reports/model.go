package reports

import (
	"strconv"

	"github.com/iic-bit/IIC-Backend/internal/participant"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

// RegistrationGroup is one registration batch reconstructed from the flat
// participant rows.
type RegistrationGroup struct {
	GroupID string
	Members []participant.Participant
}

// GroupParticipants partitions a flat fetch result by group id, keeping the
// first-seen order of groups and the fetch order of members within a group.
func GroupParticipants(parts []participant.Participant) []RegistrationGroup {
	index := make(map[string]int)
	groups := make([]RegistrationGroup, 0)

	for _, p := range parts {
		i, ok := index[p.GroupID]
		if !ok {
			i = len(groups)
			index[p.GroupID] = i
			groups = append(groups, RegistrationGroup{GroupID: p.GroupID})
		}
		groups[i].Members = append(groups[i].Members, p)
	}

	return groups
}

// exportHeaders is the column set shared by every export format.
var exportHeaders = []string{
	"GroupId", "MembersCount", "Group_Name", "Name", "Email", "Phone",
	"College_Name", "Course", "Branch", "Year", "transactionId",
}

func memberRow(p participant.Participant) []string {
	return []string{
		p.GroupID, "", p.Group, p.Name, p.Email, p.Phone,
		p.College, p.Course, p.Branch, p.Year, p.TransactionID,
	}
}

func groupHeaderRow(g RegistrationGroup) []string {
	row := make([]string, len(exportHeaders))
	row[0] = g.GroupID
	row[1] = strconv.Itoa(len(g.Members))
	return row
}
