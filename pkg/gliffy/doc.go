// Package gliffy lays out grouped devices on a grid and writes the result as
// a Gliffy diagram document.
//
// # Layout
//
// Shapes are placed row-major on a fixed grid. With [DefaultLayout] each row
// holds five 120×60 shapes, 150 units apart, starting at (100,100):
//
//	x = 100 + (i mod 5) * 150
//	y = 100 + (i / 5) * 150
//
// The index i counts shapes within one network group and restarts at zero
// for every group, so each subnet begins again at the grid origin. The stage
// is 1000×1000 no matter how many shapes there are; large inventories spill
// past the visible area.
//
// # Document
//
// [Build] produces a [SceneDocument]; [WriteJSON] and [ExportJSON] encode it
// in the Gliffy stage schema:
//
//	{
//	    "stage": {
//	        "width": 1000,
//	        "height": 1000,
//	        "children": [
//	            {
//	                "x": 100, "y": 100, "width": 120, "height": 60, "rotation": 0,
//	                "graphic": {
//	                    "type": "com.gliffy.shape.network.cisco.Router",
//	                    "title": "core-sw (10.0.0.1/24)",
//	                    "description": "Network: 10.0.0.0/24",
//	                    "link": "https://core-sw.example"
//	                }
//	            }
//	        ]
//	    }
//	}
//
// The link is omitted for devices without a URL.
package gliffy
