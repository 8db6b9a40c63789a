package pomxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

// MapProject converts the decoded document into a domain model. The first
// malformed field stops the mapping; no partial model is returned.
func MapProject(path string, xp xmlProject) (*domain.Model, error) {
	if strings.TrimSpace(xp.ArtifactID) == "" {
		return nil, invalidField(path, "artifactId", "artifactId is required")
	}

	m := &mapper{path: path}
	model := &domain.Model{
		ModelVersion: text(xp.ModelVersion),
		GroupID:      text(xp.GroupID),
		ArtifactID:   text(xp.ArtifactID),
		Version:      text(xp.Version),
		Packaging:    text(xp.Packaging),

		Name:          text(xp.Name),
		Description:   text(xp.Description),
		URL:           text(xp.URL),
		InceptionYear: text(xp.InceptionYear),
		Licenses:      mapLicenses(xp.Licenses),
		Developers:    mapDevelopers(xp.Developers),
		Contributors:  mapContributors(xp.Contributors),
		MailingLists:  mapMailingLists(xp.MailingLists),

		Modules:    texts(xp.Modules),
		Properties: properties(xp.Properties),

		Dependencies:       m.dependencies("dependencies", xp.Dependencies),
		Repositories:       m.repositories("repositories", xp.Repositories),
		PluginRepositories: m.repositories("pluginRepositories", xp.PluginRepositories),

		Build:     m.build("build", xp.Build),
		Reporting: m.reporting(xp.Reporting),
		Profiles:  m.profiles(xp.Profiles),
	}

	if p := xp.Parent; p != nil {
		model.Parent = &domain.Parent{
			GroupID:      text(p.GroupID),
			ArtifactID:   text(p.ArtifactID),
			Version:      text(p.Version),
			RelativePath: text(p.RelativePath),
		}
	}
	if o := xp.Organization; o != nil {
		model.Organization = &domain.Organization{Name: text(o.Name), URL: text(o.URL)}
	}
	if p := xp.Prerequisites; p != nil {
		model.Prerequisites = &domain.Prerequisites{Maven: text(p.Maven)}
	}
	if s := xp.Scm; s != nil {
		model.Scm = &domain.Scm{
			Connection:          text(s.Connection),
			DeveloperConnection: text(s.DeveloperConnection),
			Tag:                 text(s.Tag),
			URL:                 text(s.URL),
		}
	}
	if im := xp.IssueManagement; im != nil {
		model.IssueManagement = &domain.IssueManagement{System: text(im.System), URL: text(im.URL)}
	}
	if ci := xp.CIManagement; ci != nil {
		model.CIManagement = &domain.CIManagement{System: text(ci.System), URL: text(ci.URL)}
	}
	if dm := xp.DistributionManagement; dm != nil {
		model.DistributionManagement = &domain.DistributionManagement{
			Repository:         m.deploymentRepository("distributionManagement.repository", dm.Repository),
			SnapshotRepository: m.deploymentRepository("distributionManagement.snapshotRepository", dm.SnapshotRepository),
			DownloadURL:        text(dm.DownloadURL),
		}
		if s := dm.Site; s != nil {
			model.DistributionManagement.Site = &domain.Site{ID: text(s.ID), Name: text(s.Name), URL: text(s.URL)}
		}
	}
	if xp.DependencyManagement != nil {
		model.DependencyManagement = &domain.DependencyManagement{
			Dependencies: m.dependencies("dependencyManagement.dependencies", xp.DependencyManagement.Dependencies),
		}
	}

	if m.err != nil {
		return nil, m.err
	}
	return model, nil
}

// mapper keeps the first error seen while walking the document.
type mapper struct {
	path string
	err  error
}

func (m *mapper) flag(field, raw string) *bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		if m.err == nil {
			m.err = invalidField(m.path, field, fmt.Sprintf("expected true or false, got %q", raw))
		}
		return nil
	}
	return &b
}

func (m *mapper) dependencies(prefix string, in []xmlDependency) []domain.Dependency {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Dependency, 0, len(in))
	for i, d := range in {
		dep := domain.Dependency{
			GroupID:    text(d.GroupID),
			ArtifactID: text(d.ArtifactID),
			Version:    text(d.Version),
			Type:       text(d.Type),
			Classifier: text(d.Classifier),
			Scope:      text(d.Scope),
			SystemPath: text(d.SystemPath),
			Optional:   m.flag(fmt.Sprintf("%s[%d].optional", prefix, i), d.Optional),
		}
		for _, ex := range d.Exclusions {
			dep.Exclusions = append(dep.Exclusions, domain.Exclusion{
				GroupID:    text(ex.GroupID),
				ArtifactID: text(ex.ArtifactID),
			})
		}
		out = append(out, dep)
	}
	return out
}

func (m *mapper) repositories(prefix string, in []xmlRepository) []domain.Repository {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Repository, 0, len(in))
	for i, r := range in {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		out = append(out, domain.Repository{
			ID:        text(r.ID),
			Name:      text(r.Name),
			URL:       text(r.URL),
			Layout:    text(r.Layout),
			Releases:  m.repositoryPolicy(field+".releases", r.Releases),
			Snapshots: m.repositoryPolicy(field+".snapshots", r.Snapshots),
		})
	}
	return out
}

func (m *mapper) repositoryPolicy(field string, p *xmlRepositoryPolicy) *domain.RepositoryPolicy {
	if p == nil {
		return nil
	}
	return &domain.RepositoryPolicy{
		Enabled:        m.flag(field+".enabled", p.Enabled),
		UpdatePolicy:   text(p.UpdatePolicy),
		ChecksumPolicy: text(p.ChecksumPolicy),
	}
}

func (m *mapper) deploymentRepository(field string, r *xmlDeploymentRepository) *domain.DeploymentRepository {
	if r == nil {
		return nil
	}
	return &domain.DeploymentRepository{
		UniqueVersion: m.flag(field+".uniqueVersion", r.UniqueVersion),
		ID:            text(r.ID),
		Name:          text(r.Name),
		URL:           text(r.URL),
		Layout:        text(r.Layout),
	}
}

func (m *mapper) build(prefix string, b *xmlBuild) *domain.Build {
	if b == nil {
		return nil
	}
	out := &domain.Build{
		SourceDirectory:       text(b.SourceDirectory),
		ScriptSourceDirectory: text(b.ScriptSourceDirectory),
		TestSourceDirectory:   text(b.TestSourceDirectory),
		OutputDirectory:       text(b.OutputDirectory),
		TestOutputDirectory:   text(b.TestOutputDirectory),
		DefaultGoal:           text(b.DefaultGoal),
		Resources:             m.resources(prefix+".resources", b.Resources),
		TestResources:         m.resources(prefix+".testResources", b.TestResources),
		Directory:             text(b.Directory),
		FinalName:             text(b.FinalName),
		Filters:               texts(b.Filters),
		Plugins:               m.plugins(prefix+".plugins", b.Plugins),
	}
	for _, e := range b.Extensions {
		out.Extensions = append(out.Extensions, domain.Extension{
			GroupID:    text(e.GroupID),
			ArtifactID: text(e.ArtifactID),
			Version:    text(e.Version),
		})
	}
	if b.PluginManagement != nil {
		out.PluginManagement = &domain.PluginManagement{
			Plugins: m.plugins(prefix+".pluginManagement.plugins", b.PluginManagement.Plugins),
		}
	}
	return out
}

func (m *mapper) resources(prefix string, in []xmlResource) []domain.Resource {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Resource, 0, len(in))
	for i, r := range in {
		out = append(out, domain.Resource{
			TargetPath: text(r.TargetPath),
			Filtering:  m.flag(fmt.Sprintf("%s[%d].filtering", prefix, i), r.Filtering),
			Directory:  text(r.Directory),
			Includes:   texts(r.Includes),
			Excludes:   texts(r.Excludes),
		})
	}
	return out
}

func (m *mapper) plugins(prefix string, in []xmlPlugin) []domain.Plugin {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Plugin, 0, len(in))
	for i, p := range in {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		plugin := domain.Plugin{
			GroupID:       text(p.GroupID),
			ArtifactID:    text(p.ArtifactID),
			Version:       text(p.Version),
			Extensions:    m.flag(field+".extensions", p.Extensions),
			Dependencies:  m.dependencies(field+".dependencies", p.Dependencies),
			Inherited:     text(p.Inherited),
			Configuration: tree(p.Configuration),
		}
		for _, ex := range p.Executions {
			plugin.Executions = append(plugin.Executions, domain.PluginExecution{
				ID:            text(ex.ID),
				Phase:         text(ex.Phase),
				Goals:         texts(ex.Goals),
				Inherited:     text(ex.Inherited),
				Configuration: tree(ex.Configuration),
			})
		}
		out = append(out, plugin)
	}
	return out
}

func (m *mapper) reporting(r *xmlReporting) *domain.Reporting {
	if r == nil {
		return nil
	}
	out := &domain.Reporting{
		ExcludeDefaults: m.flag("reporting.excludeDefaults", r.ExcludeDefaults),
		OutputDirectory: text(r.OutputDirectory),
	}
	for _, p := range r.Plugins {
		rp := domain.ReportPlugin{
			GroupID:       text(p.GroupID),
			ArtifactID:    text(p.ArtifactID),
			Version:       text(p.Version),
			Inherited:     text(p.Inherited),
			Configuration: tree(p.Configuration),
		}
		for _, rs := range p.ReportSets {
			rp.ReportSets = append(rp.ReportSets, domain.ReportSet{
				ID:            text(rs.ID),
				Reports:       texts(rs.Reports),
				Inherited:     text(rs.Inherited),
				Configuration: tree(rs.Configuration),
			})
		}
		out.Plugins = append(out.Plugins, rp)
	}
	return out
}

func (m *mapper) profiles(in []xmlProfile) []domain.Profile {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Profile, 0, len(in))
	for i, p := range in {
		field := fmt.Sprintf("profiles[%d]", i)
		profile := domain.Profile{
			ID:           text(p.ID),
			Build:        m.build(field+".build", p.Build),
			Modules:      texts(p.Modules),
			Properties:   properties(p.Properties),
			Dependencies: m.dependencies(field+".dependencies", p.Dependencies),
			Repositories: m.repositories(field+".repositories", p.Repositories),
		}
		if a := p.Activation; a != nil {
			profile.Activation = &domain.Activation{
				ActiveByDefault: m.flag(field+".activation.activeByDefault", a.ActiveByDefault),
				JDK:             text(a.JDK),
			}
			if prop := a.Property; prop != nil {
				profile.Activation.Property = &domain.ActivationProperty{
					Name:  text(prop.Name),
					Value: text(prop.Value),
				}
			}
		}
		if p.DependencyManagement != nil {
			profile.DependencyManagement = &domain.DependencyManagement{
				Dependencies: m.dependencies(field+".dependencyManagement.dependencies", p.DependencyManagement.Dependencies),
			}
		}
		out = append(out, profile)
	}
	return out
}

func mapLicenses(in []xmlLicense) []domain.License {
	var out []domain.License
	for _, l := range in {
		out = append(out, domain.License{
			Name:         text(l.Name),
			URL:          text(l.URL),
			Distribution: text(l.Distribution),
			Comments:     text(l.Comments),
		})
	}
	return out
}

func mapDevelopers(in []xmlDeveloper) []domain.Developer {
	var out []domain.Developer
	for _, d := range in {
		out = append(out, domain.Developer{
			ID:              text(d.ID),
			Name:            text(d.Name),
			Email:           text(d.Email),
			URL:             text(d.URL),
			Organization:    text(d.Organization),
			OrganizationURL: text(d.OrganizationURL),
			Roles:           texts(d.Roles),
			Timezone:        text(d.Timezone),
			Properties:      properties(d.Properties),
		})
	}
	return out
}

func mapContributors(in []xmlDeveloper) []domain.Contributor {
	var out []domain.Contributor
	for _, d := range in {
		out = append(out, domain.Contributor{
			Name:            text(d.Name),
			Email:           text(d.Email),
			URL:             text(d.URL),
			Organization:    text(d.Organization),
			OrganizationURL: text(d.OrganizationURL),
			Roles:           texts(d.Roles),
			Timezone:        text(d.Timezone),
			Properties:      properties(d.Properties),
		})
	}
	return out
}

func mapMailingLists(in []xmlMailingList) []domain.MailingList {
	var out []domain.MailingList
	for _, ml := range in {
		out = append(out, domain.MailingList{
			Name:          text(ml.Name),
			Subscribe:     text(ml.Subscribe),
			Unsubscribe:   text(ml.Unsubscribe),
			Post:          text(ml.Post),
			Archive:       text(ml.Archive),
			OtherArchives: texts(ml.OtherArchives),
		})
	}
	return out
}

// properties keeps the leaf children of a <properties> element. Nested
// elements are not valid there and are dropped.
func properties(d *xmlDom) map[string]string {
	if d == nil || d.node == nil || len(d.node.Children) == 0 {
		return nil
	}
	out := make(map[string]string, len(d.node.Children))
	for _, c := range d.node.Children {
		if c.Value != nil {
			out[c.Name] = *c.Value
		}
	}
	return out
}

func tree(d *xmlDom) *domain.ConfigNode {
	if d == nil {
		return nil
	}
	return d.node
}

func text(s string) string {
	return strings.TrimSpace(s)
}

func texts(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, text(s))
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "pomxml.map",
		Kind: domain.KindInvalidModel,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidModel),
	}
}
