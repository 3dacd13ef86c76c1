package domain

import (
	m "fixpass.dev/pkg/fixpass/internal/model"
)

func problemAt(file m.Path, code, start, length int, message string) m.Problem {
	return m.Problem{
		Code:     code,
		Message:  message,
		Severity: m.SeverityError,
		Location: &m.Location{File: file, Start: start, Length: length},
	}
}

func candidate(name string, problem m.Problem, patches ...m.Patch) m.FixCandidate {
	fix := m.Fix{Name: name, Description: "apply " + name}
	if len(patches) > 0 {
		fix.Changes = []m.FileChange{{File: problem.File(), Patches: patches}}
	}

	return m.FixCandidate{Fix: fix, Problem: problem}
}
