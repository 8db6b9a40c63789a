package pomxml

import (
	"encoding/xml"
	"strings"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

type xmlProject struct {
	XMLName      xml.Name   `xml:"project"`
	ModelVersion string     `xml:"modelVersion"`
	Parent       *xmlParent `xml:"parent"`
	GroupID      string     `xml:"groupId"`
	ArtifactID   string     `xml:"artifactId"`
	Version      string     `xml:"version"`
	Packaging    string     `xml:"packaging"`

	Name          string           `xml:"name"`
	Description   string           `xml:"description"`
	URL           string           `xml:"url"`
	InceptionYear string           `xml:"inceptionYear"`
	Organization  *xmlOrganization `xml:"organization"`
	Licenses      []xmlLicense     `xml:"licenses>license"`
	Developers    []xmlDeveloper   `xml:"developers>developer"`
	Contributors  []xmlDeveloper   `xml:"contributors>contributor"`
	MailingLists  []xmlMailingList `xml:"mailingLists>mailingList"`

	Prerequisites          *xmlPrerequisites          `xml:"prerequisites"`
	Modules                []string                   `xml:"modules>module"`
	Scm                    *xmlScm                    `xml:"scm"`
	IssueManagement        *xmlSystemURL              `xml:"issueManagement"`
	CIManagement           *xmlSystemURL              `xml:"ciManagement"`
	DistributionManagement *xmlDistributionManagement `xml:"distributionManagement"`

	Properties           *xmlDom          `xml:"properties"`
	DependencyManagement *xmlDependencies `xml:"dependencyManagement"`
	Dependencies         []xmlDependency  `xml:"dependencies>dependency"`
	Repositories         []xmlRepository  `xml:"repositories>repository"`
	PluginRepositories   []xmlRepository  `xml:"pluginRepositories>pluginRepository"`

	Build     *xmlBuild     `xml:"build"`
	Reporting *xmlReporting `xml:"reporting"`
	Profiles  []xmlProfile  `xml:"profiles>profile"`
}

type xmlParent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type xmlOrganization struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type xmlLicense struct {
	Name         string `xml:"name"`
	URL          string `xml:"url"`
	Distribution string `xml:"distribution"`
	Comments     string `xml:"comments"`
}

// xmlDeveloper also decodes <contributor>, which has no <id>.
type xmlDeveloper struct {
	ID              string   `xml:"id"`
	Name            string   `xml:"name"`
	Email           string   `xml:"email"`
	URL             string   `xml:"url"`
	Organization    string   `xml:"organization"`
	OrganizationURL string   `xml:"organizationUrl"`
	Roles           []string `xml:"roles>role"`
	Timezone        string   `xml:"timezone"`
	Properties      *xmlDom  `xml:"properties"`
}

type xmlMailingList struct {
	Name          string   `xml:"name"`
	Subscribe     string   `xml:"subscribe"`
	Unsubscribe   string   `xml:"unsubscribe"`
	Post          string   `xml:"post"`
	Archive       string   `xml:"archive"`
	OtherArchives []string `xml:"otherArchives>otherArchive"`
}

type xmlPrerequisites struct {
	Maven string `xml:"maven"`
}

type xmlScm struct {
	Connection          string `xml:"connection"`
	DeveloperConnection string `xml:"developerConnection"`
	Tag                 string `xml:"tag"`
	URL                 string `xml:"url"`
}

type xmlSystemURL struct {
	System string `xml:"system"`
	URL    string `xml:"url"`
}

type xmlDistributionManagement struct {
	Repository         *xmlDeploymentRepository `xml:"repository"`
	SnapshotRepository *xmlDeploymentRepository `xml:"snapshotRepository"`
	Site               *xmlSite                 `xml:"site"`
	DownloadURL        string                   `xml:"downloadUrl"`
}

type xmlDeploymentRepository struct {
	UniqueVersion string `xml:"uniqueVersion"`
	ID            string `xml:"id"`
	Name          string `xml:"name"`
	URL           string `xml:"url"`
	Layout        string `xml:"layout"`
}

type xmlSite struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type xmlRepository struct {
	ID        string               `xml:"id"`
	Name      string               `xml:"name"`
	URL       string               `xml:"url"`
	Layout    string               `xml:"layout"`
	Releases  *xmlRepositoryPolicy `xml:"releases"`
	Snapshots *xmlRepositoryPolicy `xml:"snapshots"`
}

type xmlRepositoryPolicy struct {
	Enabled        string `xml:"enabled"`
	UpdatePolicy   string `xml:"updatePolicy"`
	ChecksumPolicy string `xml:"checksumPolicy"`
}

type xmlDependencies struct {
	Dependencies []xmlDependency `xml:"dependencies>dependency"`
}

type xmlDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Type       string         `xml:"type"`
	Classifier string         `xml:"classifier"`
	Scope      string         `xml:"scope"`
	SystemPath string         `xml:"systemPath"`
	Exclusions []xmlExclusion `xml:"exclusions>exclusion"`
	Optional   string         `xml:"optional"`
}

type xmlExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type xmlBuild struct {
	SourceDirectory       string               `xml:"sourceDirectory"`
	ScriptSourceDirectory string               `xml:"scriptSourceDirectory"`
	TestSourceDirectory   string               `xml:"testSourceDirectory"`
	OutputDirectory       string               `xml:"outputDirectory"`
	TestOutputDirectory   string               `xml:"testOutputDirectory"`
	Extensions            []xmlExtension       `xml:"extensions>extension"`
	DefaultGoal           string               `xml:"defaultGoal"`
	Resources             []xmlResource        `xml:"resources>resource"`
	TestResources         []xmlResource        `xml:"testResources>testResource"`
	Directory             string               `xml:"directory"`
	FinalName             string               `xml:"finalName"`
	Filters               []string             `xml:"filters>filter"`
	PluginManagement      *xmlPluginManagement `xml:"pluginManagement"`
	Plugins               []xmlPlugin          `xml:"plugins>plugin"`
}

type xmlExtension struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type xmlResource struct {
	TargetPath string   `xml:"targetPath"`
	Filtering  string   `xml:"filtering"`
	Directory  string   `xml:"directory"`
	Includes   []string `xml:"includes>include"`
	Excludes   []string `xml:"excludes>exclude"`
}

type xmlPluginManagement struct {
	Plugins []xmlPlugin `xml:"plugins>plugin"`
}

type xmlPlugin struct {
	GroupID       string               `xml:"groupId"`
	ArtifactID    string               `xml:"artifactId"`
	Version       string               `xml:"version"`
	Extensions    string               `xml:"extensions"`
	Executions    []xmlPluginExecution `xml:"executions>execution"`
	Dependencies  []xmlDependency      `xml:"dependencies>dependency"`
	Inherited     string               `xml:"inherited"`
	Configuration *xmlDom              `xml:"configuration"`
}

type xmlPluginExecution struct {
	ID            string   `xml:"id"`
	Phase         string   `xml:"phase"`
	Goals         []string `xml:"goals>goal"`
	Inherited     string   `xml:"inherited"`
	Configuration *xmlDom  `xml:"configuration"`
}

type xmlReporting struct {
	ExcludeDefaults string            `xml:"excludeDefaults"`
	OutputDirectory string            `xml:"outputDirectory"`
	Plugins         []xmlReportPlugin `xml:"plugins>plugin"`
}

type xmlReportPlugin struct {
	GroupID       string         `xml:"groupId"`
	ArtifactID    string         `xml:"artifactId"`
	Version       string         `xml:"version"`
	ReportSets    []xmlReportSet `xml:"reportSets>reportSet"`
	Inherited     string         `xml:"inherited"`
	Configuration *xmlDom        `xml:"configuration"`
}

type xmlReportSet struct {
	ID            string   `xml:"id"`
	Reports       []string `xml:"reports>report"`
	Inherited     string   `xml:"inherited"`
	Configuration *xmlDom  `xml:"configuration"`
}

type xmlProfile struct {
	ID                   string           `xml:"id"`
	Activation           *xmlActivation   `xml:"activation"`
	Build                *xmlBuild        `xml:"build"`
	Modules              []string         `xml:"modules>module"`
	Properties           *xmlDom          `xml:"properties"`
	DependencyManagement *xmlDependencies `xml:"dependencyManagement"`
	Dependencies         []xmlDependency  `xml:"dependencies>dependency"`
	Repositories         []xmlRepository  `xml:"repositories>repository"`
}

type xmlActivation struct {
	ActiveByDefault string                 `xml:"activeByDefault"`
	JDK             string                 `xml:"jdk"`
	Property        *xmlActivationProperty `xml:"property"`
}

type xmlActivationProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// xmlDom captures an element as a generic tree: elements with child elements
// keep their children, the others keep their trimmed text as a leaf value.
type xmlDom struct {
	node *domain.ConfigNode
}

func (d *xmlDom) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	n, err := decodeDom(dec, start)
	if err != nil {
		return err
	}
	d.node = n
	return nil
}

func decodeDom(dec *xml.Decoder, start xml.StartElement) (*domain.ConfigNode, error) {
	node := &domain.ConfigNode{Name: start.Name.Local}
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeDom(dec, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(node.Children) == 0 {
				v := strings.TrimSpace(text.String())
				node.Value = &v
			}
			return node, nil
		}
	}
}
