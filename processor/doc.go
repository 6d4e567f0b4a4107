/*
Package processor implements the definition filter of swaggerfilter.

The processor reads a full swagger document, keeps only the definitions whose
name carries a given prefix, and severs the inheritance of a fixed set of leaf
types so the code generator downstream can handle them:

	{
	    "definitions": {
	        "io.numaproj.numaflow.v1alpha1.Blackhole": {
	            "allOf": [{"$ref": "#/definitions/io.k8s.api.core.v1.Container"}]
	        },
	        "io.numaproj.numaflow.v1alpha1.Pipeline": { ... },
	        "io.k8s.api.core.v1.Container": { ... }
	    },
	    "info": { ... }
	}

Filtering with the prefix "io.numaproj.numaflow.v1alpha1." yields:

	{
	    "definitions": {
	        "io.numaproj.numaflow.v1alpha1.Blackhole": {
	            "allOf": []
	        },
	        "io.numaproj.numaflow.v1alpha1.Pipeline": { ... }
	    },
	    "info": { ... }
	}

Usage:

	p, err := processor.New("io.numaproj.numaflow.v1alpha1.",
	    processor.WithLogger(logger),
	)
	if err != nil {
	    return err
	}
	stats, err := p.Run(os.Stdin, os.Stdout)

Key order of the input is preserved everywhere, other top-level keys pass
through untouched, and the output is indented with four spaces. A document
without an object-valued "definitions" key is rejected.
*/
package processor
