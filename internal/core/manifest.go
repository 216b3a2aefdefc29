package core

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/types"
)

// ManifestFileName is the fixed manifest name the compiler expects
// inside the work directory.
const ManifestFileName = "AndroidManifest.xml"

const androidNamespace = "http://schemas.android.com/apk/res/android"

const (
	// vendorOverlayPermission must be requested on Samsung devices for
	// the system to resolve third-party overlays, except for targets on
	// the exemption list below.
	vendorOverlayPermission = "com.samsung.android.permission.SAMSUNG_OVERLAY_COMPONENT"

	// overlayListPermission lets the manager app enumerate installed
	// overlays; requested unconditionally.
	overlayListPermission = "overlaypack.permission.LIST_OVERLAYS"

	timestampMetadataKey = "install_timestamp"
)

// Targets whose overlays must not carry the vendor permission; the
// vendor's own apps reject overlays that request it.
var vendorPermissionExemptTargets = map[string]struct{}{
	"com.sec.android.app.music": {},
}

type manifestDoc struct {
	XMLName     xml.Name `xml:"manifest"`
	Namespace   string   `xml:"xmlns:android,attr"`
	Package     string   `xml:"package,attr"`
	VersionCode string   `xml:"android:versionCode,attr,omitempty"`
	VersionName string   `xml:"android:versionName,attr,omitempty"`

	Overlay     overlayElem
	UsesSDK     *usesSDKElem
	Permissions []usesPermissionElem
	Application applicationElem
}

type overlayElem struct {
	XMLName       xml.Name `xml:"overlay"`
	TargetPackage string   `xml:"android:targetPackage,attr"`
}

type usesSDKElem struct {
	XMLName   xml.Name `xml:"uses-sdk"`
	TargetSDK string   `xml:"android:targetSdkVersion,attr"`
}

type usesPermissionElem struct {
	XMLName xml.Name `xml:"uses-permission"`
	Name    string   `xml:"android:name,attr"`
}

type applicationElem struct {
	XMLName     xml.Name `xml:"application"`
	AllowBackup string   `xml:"android:allowBackup,attr"`
	HasCode     string   `xml:"android:hasCode,attr"`
	Label       string   `xml:"android:label,attr,omitempty"`
	Metadata    []metaDataElem
}

type metaDataElem struct {
	XMLName xml.Name `xml:"meta-data"`
	Name    string   `xml:"android:name,attr"`
	Value   string   `xml:"android:value,attr"`
}

// ManifestGenerator synthesizes the overlay's AndroidManifest.xml.
// All platform branching is driven by the profile so the output is a
// pure function of (profile, spec).
type ManifestGenerator struct {
	Profile types.PlatformProfile
}

func NewManifestGenerator(profile types.PlatformProfile) ManifestGenerator {
	return ManifestGenerator{Profile: profile}
}

// Generate returns the serialized manifest document.
func (g ManifestGenerator) Generate(spec types.OverlaySpec) (string, error) {
	doc := manifestDoc{
		Namespace: androidNamespace,
		Package:   spec.PackageName,
		Overlay:   overlayElem{TargetPackage: spec.TargetPackage},
	}
	if spec.VersionCode != 0 {
		doc.VersionCode = strconv.Itoa(spec.VersionCode)
	}
	if spec.VersionName != "" {
		doc.VersionName = spec.VersionName
	}

	// Samsung's overlay resolution on Nougat and later misbehaves
	// without an explicit target SDK on the overlay itself.
	if g.Profile.IsSamsung() && g.Profile.SDKVersion >= types.SDKVendorShimMin {
		doc.UsesSDK = &usesSDKElem{TargetSDK: strconv.Itoa(g.Profile.SDKVersion)}
	}

	if g.Profile.IsSamsung() && !vendorPermissionExempt(spec.TargetPackage) {
		doc.Permissions = append(doc.Permissions, usesPermissionElem{Name: vendorOverlayPermission})
	}
	doc.Permissions = append(doc.Permissions, usesPermissionElem{Name: overlayListPermission})

	app := applicationElem{
		AllowBackup: "false",
		HasCode:     "false",
		Label:       spec.Label,
	}
	for _, entry := range spec.Metadata {
		app.Metadata = append(app.Metadata, metaDataElem{Name: entry.Key, Value: entry.Value})
	}
	app.Metadata = append(app.Metadata, metaDataElem{
		Name:  timestampMetadataKey,
		Value: strconv.FormatInt(spec.InstallTimestamp, 10),
	})
	doc.Application = app

	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize overlay manifest").
			WithCause(err)
	}
	return xml.Header + string(body) + "\n", nil
}

// WriteManifest serializes the manifest and writes it to its fixed
// filename inside workDir.
func (g ManifestGenerator) WriteManifest(spec types.OverlaySpec, workDir string) error {
	text, err := g.Generate(spec)
	if err != nil {
		return err
	}
	path := filepath.Join(workDir, ManifestFileName)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write overlay manifest").
			WithCause(err)
	}
	return nil
}

func vendorPermissionExempt(targetPackage string) bool {
	_, ok := vendorPermissionExemptTargets[targetPackage]
	return ok
}
