package domain

import "fmt"

// RenderManifest renders the gdnlib library manifest: platform entries,
// empty dependency lists and fixed general flags. prefix is either
// ResPrefix or empty (see Relativize) and applies to every entry.
func RenderManifest(prefix string, b BinarySet) string {
	return fmt.Sprintf(`[entry]
Android.armeabi-v7a="%[1]s%[2]s"
Android.arm64-v8a="%[1]s%[3]s"
Android.x86="%[1]s%[4]s"
Android.x86_64="%[1]s%[5]s"
X11.64="%[1]s%[6]s"
OSX.64="%[1]s%[7]s"
Windows.64="%[1]s%[8]s"

[dependencies]

Android.armeabi-v7a=[  ]
Android.arm64-v8a=[  ]
Android.x86=[  ]
Android.x86_64=[  ]
X11.64=[  ]
OSX.64=[  ]

[general]

singleton=false
load_once=true
symbol_prefix="godot_"
reloadable=true`,
		prefix,
		b.AndroidArmv7,
		b.AndroidArm64,
		b.AndroidX86,
		b.AndroidX86_64,
		b.X11,
		b.OSX,
		b.Windows,
	)
}

// RenderClassDescriptor renders a gdns class descriptor binding one
// declaration name to the manifest at manifestPath. Names are valid
// identifiers, so no escaping is needed.
func RenderClassDescriptor(prefix, manifestPath, name string) string {
	return fmt.Sprintf(`[gd_resource type="NativeScript" load_steps=2 format=2]

[ext_resource path="%[1]s%[2]s" type="GDNativeLibrary" id=1]

[resource]
class_name = "%[3]s"
script_class_name = "%[3]s"
library = ExtResource( 1 )
`,
		prefix, manifestPath, name)
}
