package domain

// Model is the root project descriptor (the contents of a pom.xml).
// Field names used in the rendered document come from the `pom` tags.
// Unset strings are empty; unset flags are nil.
type Model struct {
	ModelVersion string  `pom:"modelVersion"`
	Parent       *Parent `pom:"parent"`
	GroupID      string  `pom:"groupId"`
	ArtifactID   string  `pom:"artifactId"`
	Version      string  `pom:"version"`
	Packaging    string  `pom:"packaging"`

	Name          string        `pom:"name"`
	Description   string        `pom:"description"`
	URL           string        `pom:"url"`
	InceptionYear string        `pom:"inceptionYear"`
	Organization  *Organization `pom:"organization"`
	Licenses      []License     `pom:"licenses"`
	Developers    []Developer   `pom:"developers"`
	Contributors  []Contributor `pom:"contributors"`
	MailingLists  []MailingList `pom:"mailingLists"`

	Prerequisites          *Prerequisites          `pom:"prerequisites"`
	Modules                []string                `pom:"modules"`
	Scm                    *Scm                    `pom:"scm"`
	IssueManagement        *IssueManagement        `pom:"issueManagement"`
	CIManagement           *CIManagement           `pom:"ciManagement"`
	DistributionManagement *DistributionManagement `pom:"distributionManagement"`

	Properties           map[string]string     `pom:"properties"`
	DependencyManagement *DependencyManagement `pom:"dependencyManagement"`
	Dependencies         []Dependency          `pom:"dependencies"`
	Repositories         []Repository          `pom:"repositories"`
	PluginRepositories   []Repository          `pom:"pluginRepositories"`

	Build     *Build     `pom:"build"`
	Reporting *Reporting `pom:"reporting"`
	Profiles  []Profile  `pom:"profiles"`
}

// Coordinates returns the groupId/artifactId/version of the model,
// inheriting groupId and version from the parent when they are not declared.
func (m *Model) Coordinates() (groupID, artifactID, version string) {
	groupID, artifactID, version = m.GroupID, m.ArtifactID, m.Version
	if m.Parent != nil {
		if groupID == "" {
			groupID = m.Parent.GroupID
		}
		if version == "" {
			version = m.Parent.Version
		}
	}
	return groupID, artifactID, version
}

type Parent struct {
	GroupID      string `pom:"groupId"`
	ArtifactID   string `pom:"artifactId"`
	Version      string `pom:"version"`
	RelativePath string `pom:"relativePath"`
}

type Organization struct {
	Name string `pom:"name"`
	URL  string `pom:"url"`
}

type License struct {
	Name         string `pom:"name"`
	URL          string `pom:"url"`
	Distribution string `pom:"distribution"`
	Comments     string `pom:"comments"`
}

// Contributor describes a person who contributed to the project without commit rights.
type Contributor struct {
	Name            string            `pom:"name"`
	Email           string            `pom:"email"`
	URL             string            `pom:"url"`
	Organization    string            `pom:"organization"`
	OrganizationURL string            `pom:"organizationUrl"`
	Roles           []string          `pom:"roles"`
	Timezone        string            `pom:"timezone"`
	Properties      map[string]string `pom:"properties"`
}

// Developer is a Contributor with a project identifier.
type Developer struct {
	ID              string            `pom:"id"`
	Name            string            `pom:"name"`
	Email           string            `pom:"email"`
	URL             string            `pom:"url"`
	Organization    string            `pom:"organization"`
	OrganizationURL string            `pom:"organizationUrl"`
	Roles           []string          `pom:"roles"`
	Timezone        string            `pom:"timezone"`
	Properties      map[string]string `pom:"properties"`
}

type MailingList struct {
	Name          string   `pom:"name"`
	Subscribe     string   `pom:"subscribe"`
	Unsubscribe   string   `pom:"unsubscribe"`
	Post          string   `pom:"post"`
	Archive       string   `pom:"archive"`
	OtherArchives []string `pom:"otherArchives"`
}

type Prerequisites struct {
	Maven string `pom:"maven"`
}

type Scm struct {
	Connection          string `pom:"connection"`
	DeveloperConnection string `pom:"developerConnection"`
	Tag                 string `pom:"tag"`
	URL                 string `pom:"url"`
}

type IssueManagement struct {
	System string `pom:"system"`
	URL    string `pom:"url"`
}

type CIManagement struct {
	System string `pom:"system"`
	URL    string `pom:"url"`
}

type DistributionManagement struct {
	Repository         *DeploymentRepository `pom:"repository"`
	SnapshotRepository *DeploymentRepository `pom:"snapshotRepository"`
	Site               *Site                 `pom:"site"`
	DownloadURL        string                `pom:"downloadUrl"`
}

type DeploymentRepository struct {
	UniqueVersion *bool  `pom:"uniqueVersion"`
	ID            string `pom:"id"`
	Name          string `pom:"name"`
	URL           string `pom:"url"`
	Layout        string `pom:"layout"`
}

type Site struct {
	ID   string `pom:"id"`
	Name string `pom:"name"`
	URL  string `pom:"url"`
}

type Repository struct {
	ID        string            `pom:"id"`
	Name      string            `pom:"name"`
	URL       string            `pom:"url"`
	Layout    string            `pom:"layout"`
	Releases  *RepositoryPolicy `pom:"releases"`
	Snapshots *RepositoryPolicy `pom:"snapshots"`
}

type RepositoryPolicy struct {
	Enabled        *bool  `pom:"enabled"`
	UpdatePolicy   string `pom:"updatePolicy"`
	ChecksumPolicy string `pom:"checksumPolicy"`
}

type DependencyManagement struct {
	Dependencies []Dependency `pom:"dependencies"`
}

// Dependency references another artifact. Type defaults to "jar" and Optional
// to false when they are not declared.
type Dependency struct {
	GroupID    string      `pom:"groupId"`
	ArtifactID string      `pom:"artifactId"`
	Version    string      `pom:"version"`
	Type       string      `pom:"type"`
	Classifier string      `pom:"classifier"`
	Scope      string      `pom:"scope"`
	SystemPath string      `pom:"systemPath"`
	Exclusions []Exclusion `pom:"exclusions"`
	Optional   *bool       `pom:"optional"`
}

type Exclusion struct {
	GroupID    string `pom:"groupId"`
	ArtifactID string `pom:"artifactId"`
}

type Build struct {
	SourceDirectory       string            `pom:"sourceDirectory"`
	ScriptSourceDirectory string            `pom:"scriptSourceDirectory"`
	TestSourceDirectory   string            `pom:"testSourceDirectory"`
	OutputDirectory       string            `pom:"outputDirectory"`
	TestOutputDirectory   string            `pom:"testOutputDirectory"`
	Extensions            []Extension       `pom:"extensions"`
	DefaultGoal           string            `pom:"defaultGoal"`
	Resources             []Resource        `pom:"resources"`
	TestResources         []Resource        `pom:"testResources"`
	Directory             string            `pom:"directory"`
	FinalName             string            `pom:"finalName"`
	Filters               []string          `pom:"filters"`
	PluginManagement      *PluginManagement `pom:"pluginManagement"`
	Plugins               []Plugin          `pom:"plugins"`
}

type Extension struct {
	GroupID    string `pom:"groupId"`
	ArtifactID string `pom:"artifactId"`
	Version    string `pom:"version"`
}

type Resource struct {
	TargetPath string   `pom:"targetPath"`
	Filtering  *bool    `pom:"filtering"`
	Directory  string   `pom:"directory"`
	Includes   []string `pom:"includes"`
	Excludes   []string `pom:"excludes"`
}

type PluginManagement struct {
	Plugins []Plugin `pom:"plugins"`
}

type Plugin struct {
	GroupID       string            `pom:"groupId"`
	ArtifactID    string            `pom:"artifactId"`
	Version       string            `pom:"version"`
	Extensions    *bool             `pom:"extensions"`
	Executions    []PluginExecution `pom:"executions"`
	Dependencies  []Dependency      `pom:"dependencies"`
	Inherited     string            `pom:"inherited"`
	Configuration *ConfigNode       `pom:"configuration"`
}

type PluginExecution struct {
	ID            string      `pom:"id"`
	Phase         string      `pom:"phase"`
	Goals         []string    `pom:"goals"`
	Inherited     string      `pom:"inherited"`
	Configuration *ConfigNode `pom:"configuration"`
}

type Reporting struct {
	ExcludeDefaults *bool          `pom:"excludeDefaults"`
	OutputDirectory string         `pom:"outputDirectory"`
	Plugins         []ReportPlugin `pom:"plugins"`
}

type ReportPlugin struct {
	GroupID       string      `pom:"groupId"`
	ArtifactID    string      `pom:"artifactId"`
	Version       string      `pom:"version"`
	ReportSets    []ReportSet `pom:"reportSets"`
	Inherited     string      `pom:"inherited"`
	Configuration *ConfigNode `pom:"configuration"`
}

type ReportSet struct {
	ID            string      `pom:"id"`
	Reports       []string    `pom:"reports"`
	Inherited     string      `pom:"inherited"`
	Configuration *ConfigNode `pom:"configuration"`
}

type Profile struct {
	ID                   string                `pom:"id"`
	Activation           *Activation           `pom:"activation"`
	Build                *Build                `pom:"build"`
	Modules              []string              `pom:"modules"`
	Properties           map[string]string     `pom:"properties"`
	DependencyManagement *DependencyManagement `pom:"dependencyManagement"`
	Dependencies         []Dependency          `pom:"dependencies"`
	Repositories         []Repository          `pom:"repositories"`
}

type Activation struct {
	ActiveByDefault *bool               `pom:"activeByDefault"`
	JDK             string              `pom:"jdk"`
	Property        *ActivationProperty `pom:"property"`
}

type ActivationProperty struct {
	Name  string `pom:"name"`
	Value string `pom:"value"`
}
