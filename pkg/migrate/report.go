package migrate

import (
	"context"
	"fmt"

	"github.com/nectarcloud/netswitch/pkg/cli"
)

// Report is the structured form of a check run.
type Report struct {
	Project    string `json:"project"`
	Networking Mode   `json:"networking"`
	Resources  []Row  `json:"resources"`
}

// BuildReport fetches the four resource collections, classifies each
// resource, and assembles the report. Rows without a recommendation are
// dropped unless showAll is set. Read-only against the cloud.
func (m *Migrator) BuildReport(ctx context.Context, showAll bool) (*Report, error) {
	project, err := m.cloud.Project(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := m.collectRows(ctx, showAll)
	if err != nil {
		return nil, err
	}

	return &Report{
		Project:    project.Name,
		Networking: project.Mode(),
		Resources:  rows,
	}, nil
}

// Check prints the project banner, the classified resource table, and a
// summary recommendation.
func (m *Migrator) Check(ctx context.Context, showAll bool) error {
	project, err := m.cloud.Project(ctx)
	if err != nil {
		return err
	}
	legacy := project.IsLegacy()

	fmt.Fprintf(m.out, "Project: %s\n", cli.Bold(project.Name))
	fmt.Fprintf(m.out, "Networking: %s\n", project.Mode())
	fmt.Fprintln(m.out, "Checking resources. This might take a while...")

	rows, err := m.collectRows(ctx, showAll)
	if err != nil {
		return err
	}

	if !legacy && len(rows) == 0 {
		fmt.Fprintln(m.out, cli.Green(fmt.Sprintf("Congratulations! Your project is already using %s networking. "+
			"No resources need to be migrated.", ModeModern)))
		return nil
	}

	if legacy {
		fmt.Fprintf(m.out, "Project %s needs to switch to %s networking.", project.Name, ModeModern)
	} else {
		fmt.Fprintf(m.out, "Project %s is already using %s networking.", project.Name, ModeModern)
	}
	if len(rows) > 0 {
		fmt.Fprint(m.out, " The following resources need to be migrated:")
	}
	fmt.Fprintln(m.out)

	if len(rows) > 0 {
		t := cli.NewTable(m.out, TableHeader...)
		for _, row := range rows {
			t.Row(row.Type, row.ID, row.Name, formatRecommendation(row.Recommendation))
		}
		t.Flush()
	}

	return nil
}

// formatRecommendation colors the recommendation cell: red where the
// resource is dead weight, yellow where it needs rework.
func formatRecommendation(rec string) string {
	switch rec {
	case RecommendDeleteUnused, RecommendDeleteEmpty:
		return cli.Red(rec)
	case RecommendReplace, RecommendSwitch:
		return cli.Yellow(rec)
	}
	return rec
}

// collectRows queries the four resource collections and classifies each
// entry: the project's non-external networks, then routers, floating
// IPs, and servers.
func (m *Migrator) collectRows(ctx context.Context, showAll bool) ([]Row, error) {
	var resources []Resource

	external := false
	networks, err := m.cloud.Networks(ctx, NetworkFilter{
		External:  &external,
		ProjectID: m.cloud.CurrentProjectID(),
	})
	if err != nil {
		return nil, err
	}
	for i := range networks {
		resources = append(resources, Resource{Kind: KindNetwork, Network: &networks[i]})
	}

	routers, err := m.cloud.Routers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range routers {
		resources = append(resources, Resource{Kind: KindRouter, Router: &routers[i]})
	}

	fips, err := m.cloud.FloatingIPs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fips {
		resources = append(resources, Resource{Kind: KindFloatingIP, FloatingIP: &fips[i]})
	}

	servers, err := m.cloud.Servers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range servers {
		resources = append(resources, Resource{Kind: KindServer, Server: &servers[i]})
	}

	var rows []Row
	for _, r := range resources {
		row, err := m.Classify(ctx, r)
		if err != nil {
			return nil, err
		}
		if !showAll && row.Recommendation == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
